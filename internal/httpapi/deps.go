package httpapi

import (
	"sync/atomic"

	"careermatch-engine/internal/config"
	"careermatch-engine/internal/events"
	"careermatch-engine/internal/resume"
	"careermatch-engine/internal/store"
)

type Deps struct {
	Store   *store.JobStore
	Archive *store.Archive
	Hub     *events.Hub

	Extractor resume.Extractor

	// CfgVal stores config.Config; handlers read the live value, never a
	// snapshot taken at startup.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
