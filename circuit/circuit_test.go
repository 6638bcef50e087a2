package circuit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
)

var seriesTable = [](struct {
	name    string
	program []int64
	phases  []int64
	signal  int64
}){
	{
		"series_43210",
		[]int64{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		[]int64{4, 3, 2, 1, 0},
		43210,
	},
	{
		"series_54321",
		[]int64{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
			101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
		[]int64{0, 1, 2, 3, 4},
		54321,
	},
	{
		"series_65210",
		[]int64{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
			1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
		[]int64{1, 0, 4, 3, 2},
		65210,
	},
}

var feedbackTable = [](struct {
	name    string
	program []int64
	phases  []int64
	signal  int64
}){
	{
		"feedback_139629729",
		[]int64{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
			27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		[]int64{9, 8, 7, 6, 5},
		139629729,
	},
	{
		"feedback_18216",
		[]int64{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
			-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
			53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
		[]int64{9, 7, 8, 5, 6},
		18216,
	},
}

func TestCircuitSeries(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range seriesTable {
		circuit := NewCircuit(entry.program, len(entry.phases))
		signal, err := circuit.Series(entry.phases, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)

		for _, amp := range circuit.Amps {
			assert.NoError(amp.Run(), entry.name)
			assert.Equal(cpu.STATE_HALT, amp.State(), entry.name)
		}
	}
}

func TestCircuitFeedback(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range feedbackTable {
		circuit := NewCircuit(entry.program, len(entry.phases))
		signal, err := circuit.Feedback(entry.phases, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, signal, entry.name)
	}
}

func TestCircuitBest(t *testing.T) {
	assert := assert.New(t)

	for _, entry := range seriesTable {
		best, order, err := Best(entry.program, []int64{0, 1, 2, 3, 4}, false, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, best, entry.name)
		assert.Equal(entry.phases, order, entry.name)
	}

	for _, entry := range feedbackTable {
		best, order, err := Best(entry.program, []int64{5, 6, 7, 8, 9}, true, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.signal, best, entry.name)
		assert.Equal(entry.phases, order, entry.name)
	}
}

func TestCircuitErrors(t *testing.T) {
	assert := assert.New(t)

	program := seriesTable[0].program

	circuit := NewCircuit(program, 5)
	_, err := circuit.Series([]int64{0, 1}, 0)
	assert.ErrorIs(err, ErrPhaseCount)

	_, _, err = Best(program, nil, false, 0)
	assert.ErrorIs(err, ErrNoPhases)

	// An amplifier that halts without taking a phase.
	circuit = NewCircuit([]int64{99}, 2)
	_, err = circuit.Series([]int64{0, 1}, 0)
	var protocol ErrProtocol
	if assert.True(errors.As(err, &protocol)) {
		assert.Equal(0, protocol.Amp)
		assert.Equal(cpu.STATE_READ, protocol.Want)
		assert.Equal(cpu.STATE_HALT, protocol.Have)
	}

	// An amplifier that faults.
	circuit = NewCircuit([]int64{3, 0, 42}, 1)
	_, err = circuit.Series([]int64{0}, 0)
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)
}
