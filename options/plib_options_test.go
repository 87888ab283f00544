package options

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewPlibOptions(t *testing.T) {

	for _, tc := range []struct {
		name     string
		input    *PlibOptions
		expected PlibOptions
	}{
		{
			name:     "nil gives defaults",
			input:    nil,
			expected: PlibOptions{ProfilePath: "."},
		},
		{
			name:     "copies fields",
			input:    &PlibOptions{Debug: true, CPUProfile: true, ProfilePath: "/tmp/prof"},
			expected: PlibOptions{Debug: true, CPUProfile: true, ProfilePath: "/tmp/prof"},
		},
		{
			name:     "empty profile path keeps default",
			input:    &PlibOptions{Debug: true},
			expected: PlibOptions{Debug: true, ProfilePath: "."},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := NewPlibOptions(tc.input)
			assert.NotNil(t, opt)
			assert.Equal(t, tc.expected, *opt)
		})
	}
}

func TestApplySetsLogLevel(t *testing.T) {
	orig := log.GetLevel()
	defer log.SetLevel(orig)

	NewPlibOptions(&PlibOptions{Debug: true}).Apply()
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	NewPlibOptions(nil).Apply()
	assert.Equal(t, log.InfoLevel, log.GetLevel())
}

func TestStartProfileDisabled(t *testing.T) {
	s := NewPlibOptions(nil).StartProfile()
	assert.IsType(t, noopStopper{}, s)
	s.Stop()
}
