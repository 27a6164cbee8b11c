// Package dbg renders arbitrary values as human-readable debug text and
// prints them next to the source expressions that produced them.
//
//	dbg.Print(x, len(xs), m)
//	// [42] x = 3 | len(xs) = 4 | m = {a: 1, b: 2}
//
// The package-level functions write to os.Stderr and compile to no-ops unless
// the program is built with the dbg tag:
//
//	go build -tags dbg ./...
//
// A [Printer] writes unconditionally to any io.Writer. [Sprint] and [Render]
// return or write a single rendering without a record around it.
//
// # Categories
//
// Every type is classified once into a [Shape] by [Classify]. The category
// selects the rendering:
//
//   - [CategoryScalar]: numbers, strings, booleans, errors, fmt.Stringer
//     values, byte arrays up to the first NUL, bit vectors (most significant
//     bit first) and types installed with [Register]
//   - [CategoryPair]: [Pairer] values, such as [Pair], as "(a, b)"
//   - [CategoryTuple]: [Tupler] values, such as [Tuple], as "(a, b, c)"
//   - [CategoryFixedAggregate]: Go arrays, always on one line
//   - [CategoryContainer]: slices, maps, iterators, container/list and the
//     github.com/emirpasic/gods lists, sets and maps
//   - [CategoryAdapter]: stacks, queues and priority queues
//
// Pointers render as their pointee. Structs with a single integer field
// render as that integer; other structs are dumped in compact Go syntax.
// Channels and non-iterator functions are unsupported.
//
// # Layout
//
// Sequences go multi-line only when their elements are containers or pairs.
// Ordered sets go multi-line above [SetThreshold] elements and maps above
// [MapThreshold] entries or when their values are containers:
//
//	[
//	  [1, 2],
//	  [3]
//	]
//
// Elements of hash-based sets and maps are sorted so output is stable.
//
// # Adapters
//
// Stacks and queues expose no iteration, so rendering pops or dequeues every
// element. A rendered adapter is left empty. Pass a copy when the contents
// are still needed.
//
// # Records
//
// A record is a location tag, then "name = value" segments. Segments are
// separated by " | " after a single-line value and by a line break after a
// multi-line one. [Config] selects the tag, the indent and the separator
// written by [Sep]; it can be loaded from YAML with [LoadConfig].
//
// # Errors
//
// [Render] and [Classify] return errors wrapping [ErrUnsupportedType].
// Records show unsupported values as "<unsupported T>" instead. Config
// problems wrap [ErrInvalidConfig]. Write errors are ignored.
package dbg
