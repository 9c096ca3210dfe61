package generator

import (
	"github.com/randaleike/argparse-language-autogen/descriptions"
)

// Default output subdirectory names.
const (
	DefaultIncSubdir  = "inc"
	DefaultSrcSubdir  = "src"
	DefaultTestSubdir = "test"
	DefaultMockSubdir = "mock"
)

// Suite runs the full generation pass, producing the language class
// files, the base interface files and the cmake build glue.
type Suite struct {
	langs *descriptions.LanguageList
	class *descriptions.StringClass
	owner string
	eula  string

	IncSubdir  string
	SrcSubdir  string
	TestSubdir string
	MockSubdir string

	// BaseDirName is the directory component the cmake include file
	// uses when a parent project references the generated sources.
	BaseDirName string
}

// NewSuite builds a generation suite. An empty owner defaults to the
// generation tool name and an empty eulaName defaults to the MIT
// license text.
func NewSuite(langs *descriptions.LanguageList, class *descriptions.StringClass,
	owner, eulaName string) *Suite {
	return &Suite{
		langs: langs,
		class: class,
		owner: owner,
		eula:  eulaName,

		IncSubdir:   DefaultIncSubdir,
		SrcSubdir:   DefaultSrcSubdir,
		TestSubdir:  DefaultTestSubdir,
		MockSubdir:  DefaultMockSubdir,
		BaseDirName: "output",
	}
}

// Generate produces every output file into a new FileSet. Nothing is
// written to disk until FileSet.Write is called.
func (s *Suite) Generate() (*FileSet, error) {
	fs := NewFileSet()

	baseGen, err := NewBaseFileGenerator(s.langs, s.class, s.owner, s.eula)
	if err != nil {
		return nil, err
	}
	if err := baseGen.Generate(fs, s.IncSubdir, s.SrcSubdir, s.TestSubdir, s.MockSubdir); err != nil {
		return nil, err
	}

	langGen, err := NewLangFileGenerator(s.langs, s.class, s.owner, s.eula)
	if err != nil {
		return nil, err
	}
	if err := langGen.Generate(fs, s.IncSubdir, s.SrcSubdir, s.TestSubdir); err != nil {
		return nil, err
	}

	cmakeGen := NewCmakeGenerator(baseGen, langGen, []string{s.IncSubdir}, s.MockSubdir, s.BaseDirName)
	cmakeGen.Generate(fs)
	return fs, nil
}
