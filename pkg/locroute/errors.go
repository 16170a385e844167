package locroute

import (
	"fmt"
	"strings"
)

// ConfigError reports locale entries dropped during compilation. It is
// returned by the facade's strict mode, where a partial configuration is a
// mistake rather than a degraded-but-working state.
type ConfigError struct {
	Diagnostics []Diagnostic
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "locroute: %d route entries dropped during compile", len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		b.WriteString("\n  ")
		b.WriteString(d.String())
	}
	return b.String()
}
