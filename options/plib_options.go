package options

import (
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

type PlibOptions struct {
	Debug       bool
	CPUProfile  bool
	ProfilePath string
}

// noopStopper is returned when profiling is disabled.
type noopStopper struct{}

func (noopStopper) Stop() {}

// Stopper ends a profiling session.
type Stopper interface {
	Stop()
}

func NewPlibOptions(options *PlibOptions) *PlibOptions {

	opt := &PlibOptions{ProfilePath: "."}
	if options != nil {
		opt.Debug = options.Debug
		opt.CPUProfile = options.CPUProfile
		if options.ProfilePath != "" {
			opt.ProfilePath = options.ProfilePath
		}
	}
	return opt
}

// Apply configures the package level logger.
func (o *PlibOptions) Apply() {
	if o.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// StartProfile starts a CPU profile written to ProfilePath when enabled.
// The caller must Stop the result.
func (o *PlibOptions) StartProfile() Stopper {
	if !o.CPUProfile {
		return noopStopper{}
	}
	return profile.Start(profile.CPUProfile, profile.ProfilePath(o.ProfilePath), profile.Quiet)
}
