// Package cmdtest runs command line programs in process against cases
// described in YAML files and can write the observed results back.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is one entry of the tests sequence of a YAML file.
type Case struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Cmd selects the program given to Register.
	Cmd string `yaml:"cmd"`
	// Args are passed as they are, no shell quoting applies.
	Args []string          `yaml:"args"`
	Env  map[string]string `yaml:"env"`
	// Skip, when set, is the reason the case is skipped.
	Skip   string `yaml:"skip"`
	Expect Expect `yaml:"expect"`
}

type Expect struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr"`
	ExitCode int    `yaml:"exitCode"`
}

// File holds the cases read from one YAML file.
type File struct {
	Name  string `yaml:"-"`
	Tests []Case `yaml:"tests"`
}

type Suite struct {
	files    []*File
	programs map[string]func() int
	sources  map[*File]*source
	mu       sync.Mutex
}

// source keeps the parsed node tree of a file so updates preserve its
// layout and comments.
type source struct {
	path  string
	root  *yaml.Node
	cases []*yaml.Node
}

// Read loads every .yaml and .yml file below dir. A file is either a
// sequence of cases or a mapping with a tests key.
func Read(dir string) (*Suite, error) {
	s := &Suite{
		programs: map[string]func() int{},
		sources:  map[*File]*source{},
	}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return s.readFile(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Suite) readFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(root.Content) == 0 {
		return fmt.Errorf("%s: empty yaml", path)
	}
	testsNode, err := locateTests(root.Content[0])
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	f := &File{Name: filepath.Base(path)}
	if err := testsNode.Decode(&f.Tests); err != nil {
		return fmt.Errorf("%s: decode tests: %w", path, err)
	}
	s.files = append(s.files, f)
	s.sources[f] = &source{path: path, root: &root, cases: testsNode.Content}
	return nil
}

// Register binds the name used in the cmd field to a program returning its
// exit code.
func (s *Suite) Register(cmd string, run func() int) {
	s.programs[cmd] = run
}

// Run checks every case.
func (s *Suite) Run(t *testing.T) {
	s.RunWithUpdate(t, false)
}

// RunWithUpdate checks every case, or with update rewrites the expectations
// of failing cases with what the program produced.
func (s *Suite) RunWithUpdate(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.files {
		t.Run(f.Name, func(t *testing.T) {
			for i := range f.Tests {
				t.Run(caseName(f, i), func(t *testing.T) {
					s.runCase(t, f, i, update)
				})
			}
		})
	}
}

func caseName(f *File, i int) string {
	if n := f.Tests[i].Name; n != "" {
		return n
	}
	return fmt.Sprintf("case-%d", i)
}

type output struct {
	stdout   string
	stderr   string
	exitCode int
}

func (s *Suite) runCase(t *testing.T, f *File, i int, update bool) {
	c := &f.Tests[i]
	if c.Skip != "" {
		t.Skip(c.Skip)
	}
	run, ok := s.programs[c.Cmd]
	if !ok {
		t.Fatalf("command %q not registered", c.Cmd)
	}

	restore := setEnv(c.Env)
	oldArgs := os.Args
	os.Args = append([]string{c.Cmd}, c.Args...)
	got, err := capture(t, run)
	os.Args = oldArgs
	restore()
	if err != nil {
		t.Fatal(err)
	}

	changes := s.compare(t, f, i, got, update)
	if update && len(changes) > 0 {
		src := s.sources[f]
		if err := src.write(); err != nil {
			t.Fatalf("write %s: %v", src.path, err)
		}
		fmt.Printf("cmdtest: updated %s (%s): %s\n", src.path, caseName(f, i), strings.Join(changes, "; "))
	}
}

// setEnv applies env and returns a function restoring the previous values.
func setEnv(env map[string]string) func() {
	type saved struct {
		value  string
		exists bool
	}
	old := make(map[string]saved, len(env))
	for k, v := range env {
		val, exists := os.LookupEnv(k)
		old[k] = saved{val, exists}
		os.Setenv(k, v)
	}
	return func() {
		for k, sv := range old {
			if sv.exists {
				os.Setenv(k, sv.value)
			} else {
				os.Unsetenv(k)
			}
		}
	}
}

// capture runs run with os.Stdout and os.Stderr redirected to pipes.
func capture(t *testing.T, run func() int) (output, error) {
	rOut, wOut, err := os.Pipe()
	if err != nil {
		return output{}, err
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		return output{}, err
	}
	oldStdout, oldStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = wOut, wErr

	var got output
	var wg sync.WaitGroup
	drain := func(r io.Reader, dst *string) {
		defer wg.Done()
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		*dst = buf.String()
	}
	wg.Add(2)
	go drain(rOut, &got.stdout)
	go drain(rErr, &got.stderr)

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				got.exitCode = -1
			}
		}()
		got.exitCode = run()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	wg.Wait()
	_ = rOut.Close()
	_ = rErr.Close()
	os.Stdout, os.Stderr = oldStdout, oldStderr
	return got, nil
}

func (s *Suite) compare(t *testing.T, f *File, i int, got output, update bool) []string {
	c := &f.Tests[i]
	src := s.sources[f]
	if src == nil {
		t.Fatalf("no yaml source for %s", f.Name)
	}
	expectNode := ensureMapValue(src.cases[i], "expect")

	var changes []string
	if got.exitCode != c.Expect.ExitCode {
		if update {
			c.Expect.ExitCode = got.exitCode
			setIntScalar(ensureMapValue(expectNode, "exitCode"), got.exitCode)
			changes = append(changes, fmt.Sprintf("exitCode=%d", got.exitCode))
		} else {
			t.Errorf("exit code mismatch:\nwant: %d\ngot:  %d", c.Expect.ExitCode, got.exitCode)
		}
	}
	for _, stream := range []struct {
		key  string
		want *string
		got  string
	}{
		{"stdout", &c.Expect.Stdout, got.stdout},
		{"stderr", &c.Expect.Stderr, got.stderr},
	} {
		if stream.got == *stream.want {
			continue
		}
		if update {
			*stream.want = stream.got
			setStringScalar(ensureMapValue(expectNode, stream.key), stream.got)
			changes = append(changes, fmt.Sprintf("%s=%q", stream.key, summarize(stream.got)))
		} else {
			t.Errorf("%s mismatch:\nwant:\n%s\ngot:\n%s", stream.key, *stream.want, stream.got)
		}
	}
	return changes
}

func (src *source) write() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(src.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return os.WriteFile(src.path, buf.Bytes(), 0o644)
}

func locateTests(doc *yaml.Node) (*yaml.Node, error) {
	switch doc.Kind {
	case yaml.MappingNode:
		tests := findMapValue(doc, "tests")
		if tests == nil {
			return nil, fmt.Errorf("missing 'tests' key")
		}
		if tests.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("tests must be a sequence")
		}
		return tests, nil
	case yaml.SequenceNode:
		return doc, nil
	}
	return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
}

func findMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(m *yaml.Node, key string) *yaml.Node {
	if m.Kind != yaml.MappingNode {
		m.Kind = yaml.MappingNode
		m.Content = nil
	}
	if v := findMapValue(m, key); v != nil {
		return v
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str"}
	m.Content = append(m.Content, k, v)
	return v
}

func setStringScalar(node *yaml.Node, val string) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!str"
	node.Style = 0
	// a lone line break would be written as an empty literal block
	if val == "\n" || val == "\r\n" {
		node.Style = yaml.DoubleQuotedStyle
	}
	node.Value = val
}

func setIntScalar(node *yaml.Node, val int) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!int"
	node.Style = 0
	node.Value = strconv.Itoa(val)
}

func summarize(s string) string {
	s = strings.NewReplacer("\n", `\n`, "\t", `\t`).Replace(s)
	if len(s) > 80 {
		return s[:77] + "..."
	}
	return s
}
