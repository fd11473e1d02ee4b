package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue adapts an enumer type to pflag.Value.
type enumValue[T fmt.Stringer] struct {
	p     *T
	typ   string
	parse func(string) (T, error)
	names []string
}

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be one of %s", strings.Join(e.names, ", "))
	}
	*e.p = v
	return nil
}

func (e *enumValue[T]) String() string { return (*e.p).String() }
func (e *enumValue[T]) Type() string   { return e.typ }

func FormatVar(fs *pflag.FlagSet, p *Format, name string, value Format, usage string) {
	*p = value
	fs.Var(&enumValue[Format]{p: p, typ: "format", parse: FormatString, names: FormatStrings()}, name,
		fmt.Sprintf("%s (%s)", usage, strings.Join(FormatStrings(), "|")))
}

func ShellTypeVar(fs *pflag.FlagSet, p *ShellType, name string, value ShellType, usage string) {
	*p = value
	fs.Var(&enumValue[ShellType]{p: p, typ: "shell", parse: ShellTypeString, names: ShellTypeStrings()}, name,
		fmt.Sprintf("%s (%s)", usage, strings.Join(ShellTypeStrings(), "|")))
}
