//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab -text
//go:generate go run github.com/dmarkham/enumer -type=Format -trimprefix=Format -transform=lower -text
package cli

// ShellType selects the syntax of exported variables.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

// Format selects how results are printed.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatCBOR
)

type ShellInfo struct {
	Type ShellType
	Name string
}

// Options carries the settings shared by every subcommand.
type Options struct {
	Base        int
	Delims      string
	Format      Format
	Shell       ShellType
	EnvPrefix   string
	Export      string
	Persist     bool
	MultiFormat []string
}
