package dbg

import "github.com/rs/zerolog"

// Attach adds each value to e as a string field holding its rendering,
// keyed by the matching expression in names. It returns e for chaining:
//
//	log.Debug().Func(func(e *zerolog.Event) { dbg.Attach(e, "x, ys", x, ys) }).Msg("state")
func Attach(e *zerolog.Event, names string, values ...any) *zerolog.Event {
	for _, f := range Fields(names, values...) {
		e = e.Str(f.Name, Sprint(f.Value))
	}
	return e
}
