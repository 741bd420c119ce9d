package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		survives := neighbors == 2 || neighbors == 3
		born := neighbors == 3

		assert.Equal(t, survives, ApplyConwayRules(neighbors, true), "alive with %d neighbors", neighbors)
		assert.Equal(t, born, ApplyConwayRules(neighbors, false), "dead with %d neighbors", neighbors)
	}
}
