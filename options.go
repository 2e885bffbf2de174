package rant

// File : rant/options.go
//
// Options is a plain struct constructed via functional options
// (spec §6 "Options recognised by the engine"), matching the teacher's
// constructor style: NewParser/NewEvaluator/NewRepl all take explicit,
// typed arguments rather than a generic config map, so New takes
// typed Option values instead of a builder.

// Options holds every engine-construction-time setting spec §6 names.
type Options struct {
	EnableRequire bool
	Seed          uint64
	Debug         bool
	ProgramName   string
	ProgramPath   string
	FileLoader    FileLoader
}

func defaultOptions() Options {
	return Options{
		ProgramName: "program",
	}
}

// Option mutates Options during New.
type Option func(*Options)

// WithRequire enables the `require` native (spec §6 "enable_require").
// A nil loader falls back to osFileLoader (plain os.ReadFile), matching
// the teacher's file/file.go default of reading straight off disk.
func WithRequire(loader FileLoader) Option {
	return func(o *Options) {
		o.EnableRequire = true
		o.FileLoader = loader
	}
}

// WithSeed sets the RNG seed (spec §6 "seed (u64)"; spec §8 determinism
// law: same seed, same program, same output).
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDebug embeds source positions in the ST (spec §6 "debug (bool);
// embeds source positions in the ST").
func WithDebug(debug bool) Option {
	return func(o *Options) { o.Debug = debug }
}

// WithProgramName sets the name used in stack traces (spec §6
// "program_name").
func WithProgramName(name string) Option {
	return func(o *Options) { o.ProgramName = name }
}

// WithProgramPath sets the path used in stack traces (spec §6
// "program_path").
func WithProgramPath(path string) Option {
	return func(o *Options) { o.ProgramPath = path }
}
