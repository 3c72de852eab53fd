package dyloading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {
	assert.Equal(t, int32(5), Sum(2, 3))
	assert.Equal(t, int32(-5), Sum(-7, 2))
	assert.Equal(t, int32(0), Sum(0, 0))
}

func TestSumWrapsOnOverflow(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Sum(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MaxInt32), Sum(math.MinInt32, -1))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "[External dyloading] The result (2 + 3) is 5!", Message(2, 3))
	assert.Equal(t, "[External dyloading] The result (-7 + 2) is -5!", Message(-7, 2))
	assert.Equal(t, "[External dyloading] The result (0 + 0) is 0!", Message(0, 0))
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "[External dyloading] Hello Jack", Greeting("Jack"))
	assert.Equal(t, "[External dyloading] Hello ", Greeting(""))
}

func TestFillMessage(t *testing.T) {
	buf := make([]byte, 64)
	sum, err := FillMessage(buf, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(5), sum)

	msg := "[External dyloading] The result (2 + 3) is 5!"
	assert.Equal(t, msg, string(buf[:len(msg)]))
	assert.Equal(t, byte(0), buf[len(msg)], "message must be NUL-terminated")
}

func TestFillMessageExactFit(t *testing.T) {
	msg := Message(-7, 2)
	buf := make([]byte, len(msg)+1)
	sum, err := FillMessage(buf, -7, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-5), sum)
	assert.Equal(t, msg, string(buf[:len(msg)]))
}

func TestFillMessageTooSmall(t *testing.T) {
	buf := make([]byte, 8)
	_, err := FillMessage(buf, 2, 3)
	require.ErrorIs(t, err, ErrBufferTooSmall)

	// One byte short: message fits but the terminator does not.
	msg := Message(2, 3)
	short := make([]byte, len(msg))
	_, err = FillMessage(short, 2, 3)
	require.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Equal(t, make([]byte, len(msg)), short, "failed fill must leave the buffer untouched")
}

func TestCallsAreIdempotent(t *testing.T) {
	first := Message(11, 31)
	second := Message(11, 31)
	assert.Equal(t, first, second)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	sumA, err := FillMessage(bufA, 11, 31)
	require.NoError(t, err)
	sumB, err := FillMessage(bufB, 11, 31)
	require.NoError(t, err)
	assert.Equal(t, sumA, sumB)
	assert.Equal(t, bufA, bufB)
}
