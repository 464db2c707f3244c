package config

// Mrjarfile represents the structure of the mrjar.yaml configuration file.
type Mrjarfile struct {
	// Version is the schema version, "1" when empty.
	Version string `yaml:"version"`
	// Root is the project base directory, relative to the file.
	Root string `yaml:"root"`

	SourceDirectory             string   `yaml:"sourceDirectory"`
	SourceRoots                 []string `yaml:"sourceRoots"`
	MultiReleaseSourceDirectory string   `yaml:"multiReleaseSourceDirectory"`
	BuildDirectory              string   `yaml:"buildDirectory"`
	OutputDirectory             string   `yaml:"outputDirectory"`
	StagingDirectory            string   `yaml:"stagingDirectory"`
	Archive                     string   `yaml:"archive"`
	Classpath                   []string `yaml:"classpath"`

	MultiRelease string `yaml:"multiRelease"`
	MainRelease  string `yaml:"mainRelease"`
	Descriptor   string `yaml:"descriptor"`
	SourceSuffix string `yaml:"sourceSuffix"`
	OutputSuffix string `yaml:"outputSuffix"`

	Manifest map[string]string `yaml:"manifest"`
	Compiler OptionsDTO        `yaml:"compiler"`
	Releases []ReleaseDTO      `yaml:"releases"`
}

// ReleaseDTO represents a per-release override.
type ReleaseDTO struct {
	Release       string     `yaml:"release"`
	Configuration OptionsDTO `yaml:"configuration"`
}

// OptionsDTO represents compiler options. Unset fields are nil.
type OptionsDTO struct {
	Includes                  []string          `yaml:"includes"`
	Excludes                  []string          `yaml:"excludes"`
	Source                    *string           `yaml:"source"`
	Target                    *string           `yaml:"target"`
	Release                   *string           `yaml:"release"`
	Encoding                  *string           `yaml:"encoding"`
	CompilerArgs              []string          `yaml:"compilerArgs"`
	CompilerArgument          *string           `yaml:"compilerArgument"`
	CompilerArguments         map[string]string `yaml:"compilerArguments"`
	GeneratedSourcesDirectory *string           `yaml:"generatedSourcesDirectory"`
	StaleMillis               *int              `yaml:"staleMillis"`
	Debug                     *bool             `yaml:"debug"`
	DebugLevel                *string           `yaml:"debugLevel"`
	Verbose                   *bool             `yaml:"verbose"`
	ShowWarnings              *bool             `yaml:"showWarnings"`
	ShowDeprecation           *bool             `yaml:"showDeprecation"`
	FailOnWarning             *bool             `yaml:"failOnWarning"`
	Executable                *string           `yaml:"executable"`
}
