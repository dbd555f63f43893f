package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatConfigIsManager(t *testing.T) {
	cfg := &ChatConfig{ChatID: -100, Managers: []int64{10, 11}}

	assert.True(t, cfg.IsManager(10))
	assert.True(t, cfg.IsManager(11))
	assert.False(t, cfg.IsManager(12))

	empty := &ChatConfig{ChatID: -100}
	assert.False(t, empty.IsManager(10))
}
