package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCipherSetMaxStrengthAndWeak(t *testing.T) {
	s := NewCipherSet(CipherTKIP, CipherCCMP)
	assert.Equal(t, 70, s.MaxStrength())
	assert.True(t, s.HasWeak())
	assert.True(t, s.HasStrong())

	pure := NewCipherSet(CipherGCMP256)
	assert.False(t, pure.HasWeak())
}

func TestCipherSetSortedIsStable(t *testing.T) {
	s := NewCipherSet(CipherGCMP256, CipherWEP40, CipherCCMP)
	first := s.Sorted()
	second := s.Sorted()
	assert.Equal(t, first, second)
	assert.Equal(t, CipherWEP40, first[0])
	assert.Equal(t, CipherGCMP256, first[len(first)-1])
}
