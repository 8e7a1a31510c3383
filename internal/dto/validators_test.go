package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegdNoPattern(t *testing.T) {
	valid := []string{"21CSE001", "21cse001", "19IT1234", "22CIVIL001"}
	for _, s := range valid {
		assert.True(t, regdNoRe.MatchString(s), s)
	}

	invalid := []string{"", "CSE001", "21CSE", "21C001", "21CSE00123", "2CSE001", "21CSE001X"}
	for _, s := range invalid {
		assert.False(t, regdNoRe.MatchString(s), s)
	}
}
