// Package mode defines the application modes and the services they share.
package mode

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/berth/internal/config"
	"github.com/zjrosen/berth/internal/flags"
	"github.com/zjrosen/berth/internal/nav"
	"github.com/zjrosen/berth/internal/ui/markdown"
	"github.com/zjrosen/berth/internal/ui/toaster"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeModules AppMode = iota
	ModeGlossary
)

func (m AppMode) String() string {
	switch m {
	case ModeModules:
		return "modules"
	case ModeGlossary:
		return "glossary"
	default:
		return "unknown"
	}
}

// Services contains shared dependencies injected into the modes.
type Services struct {
	Nav      *nav.Controller
	Markdown *markdown.Service
	Config   *config.Config
	Flags    *flags.Registry
	Tracer   trace.Tracer
}

// ShowToastMsg asks the app to show a transient notification.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}
