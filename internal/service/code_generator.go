package service

import (
	"math"
	"sync/atomic"

	"github.com/avc-dev/base62-shortener/internal/model"
)

const (
	// AllowedChars алфавит кодов: сначала строчные, затем заглавные буквы, затем цифры.
	// Позиция символа равна значению цифры в системе счисления base62.
	AllowedChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	base = uint64(len(AllowedChars))

	// maxCodeLength длина кода для math.MaxUint64 в base62
	maxCodeLength = 11
)

// CodeGenerator выдает коды по монотонно растущему счетчику
type CodeGenerator struct {
	counter atomic.Uint64
}

// NewCodeGenerator создает генератор, у которого первый код соответствует 0 ("a")
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// NewCodeGeneratorFrom создает генератор, продолжающий счет с заданного значения
func NewCodeGeneratorFrom(start uint64) *CodeGenerator {
	g := &CodeGenerator{}
	g.counter.Store(start)
	return g
}

// Next увеличивает счетчик ровно на 1 и возвращает код для значения до увеличения.
// Значение math.MaxUint64 никогда не выдается: при его достижении счетчик
// не сдвигается и возвращается ErrCounterExhausted.
func (g *CodeGenerator) Next() (model.Code, error) {
	for {
		current := g.counter.Load()
		if current == math.MaxUint64 {
			return "", ErrCounterExhausted
		}
		if g.counter.CompareAndSwap(current, current+1) {
			return Encode(current), nil
		}
	}
}

// Issued возвращает количество уже выданных кодов
func (g *CodeGenerator) Issued() uint64 {
	return g.counter.Load()
}

// Encode переводит число в строку base62, старший разряд первым
func Encode(n uint64) model.Code {
	var buf [maxCodeLength]byte
	i := len(buf)

	// Хотя бы один символ выдается даже для нуля
	for {
		i--
		buf[i] = AllowedChars[n%base]
		n /= base
		if n == 0 {
			break
		}
	}

	return model.Code(buf[i:])
}
