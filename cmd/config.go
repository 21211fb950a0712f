package cmd

// Config carries the runtime settings of the ordering service, loaded from
// the environment at startup.
type Config struct {
	HTTPPort           string
	DispatchJobEnabled bool
	SeedDemoData       bool
}
