package generator

import (
	"path"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

// BaseFileGenerator emits the abstract base class header, the OS
// language selection source, the mock class and the related unit tests.
type BaseFileGenerator struct {
	helper *CppHelper
	langs  *descriptions.LanguageList
	class  *descriptions.StringClass
	owner  string

	toolName      string
	osSelectors   []OsSelectGenerator
	master        *MasterSelectGenerator
	mockClassName string

	hFileName           string
	cppFileName         string
	unittestBaseFile    string
	unittestSelectFiles []UnittestSet
	mockHFileName       string
	mockCppFileName     string
	incDirs             []string
}

// NewBaseFileGenerator builds the base class generator. The selector
// list covers Linux, Windows and the static compile switch fallback.
func NewBaseFileGenerator(langs *descriptions.LanguageList, class *descriptions.StringClass,
	owner, eulaName string) (*BaseFileGenerator, error) {
	helper, err := NewCppHelper(eulaName)
	if err != nil {
		return nil, err
	}
	return &BaseFileGenerator{
		helper: helper,
		langs:  langs,
		class:  class,
		owner:  owner,

		toolName: "GenerateBaseLangFilesV1.0.0.1",
		osSelectors: []OsSelectGenerator{
			NewLinuxSelectGenerator(langs),
			NewWindowsSelectGenerator(langs),
			NewStaticSelectGenerator(langs),
		},
		master:        NewMasterSelectGenerator(),
		mockClassName: "mock_" + BaseClassName,
	}, nil
}

// CmakeHFileName returns the generated base header path.
func (g *BaseFileGenerator) CmakeHFileName() string { return g.hFileName }

// CmakeLibFileName returns the generated base source path.
func (g *BaseFileGenerator) CmakeLibFileName() string { return g.cppFileName }

// CmakeBaseUnittestFileName returns the base unit test path.
func (g *BaseFileGenerator) CmakeBaseUnittestFileName() string { return g.unittestBaseFile }

// CmakeSelectUnittestFiles returns the OS selection unit test builds.
func (g *BaseFileGenerator) CmakeSelectUnittestFiles() []UnittestSet { return g.unittestSelectFiles }

// CmakeMockIncFileName returns the mock header path.
func (g *BaseFileGenerator) CmakeMockIncFileName() string { return g.mockHFileName }

// CmakeMockSrcFileName returns the mock source path.
func (g *BaseFileGenerator) CmakeMockSrcFileName() string { return g.mockCppFileName }

// CmakeIncludeDirs lists header subdirectories for cmake.
func (g *BaseFileGenerator) CmakeIncludeDirs() []string { return g.incDirs }

// virtualMethod emits one pure virtual method declaration for the base
// class header.
func (g *BaseFileGenerator) virtualMethod(name, brief string, params []descriptions.ParamDesc,
	ret descriptions.ReturnDesc) []string {
	cppRet, _ := TranslateReturn(ret)
	return g.helper.Declare(FuncSpec{
		Name:    name,
		Brief:   brief,
		Params:  TranslateParams(params),
		Ret:     &cppRet,
		Indent:  declareIndent,
		Prefix:  "[[nodiscard]] virtual",
		Postfix: methodPostfix(params, "= 0"),
	})
}

func (g *BaseFileGenerator) baseHFileLines() []string {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{"<cstddef>", "<cstdlib>", "<memory>", "<string>"})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(HFileName(""), doxyGroupName, doxyGroupDesc)...)
	lines = append(lines, "")
	lines = append(lines,
		"using "+ParserStringType+" = std::string;          ///< Standard parser string definition",
		"using "+ParserCharType+" = char;                ///< Standard parser character definition",
		"",
	)
	lines = append(lines, NamespaceOpen(NamespaceName)...)
	lines = append(lines, "")
	lines = append(lines, g.helper.ClassOpen(BaseClassName,
		"Parser error/help string generation interface", "", "")...)
	lines = append(lines, "    public:")
	lines = append(lines, g.helper.DefaultConstructors(BaseClassName, declareIndent, true, false)...)

	for _, name := range g.class.PropertyMethodNames() {
		method := g.class.PropertyMethods[name]
		lines = append(lines, g.virtualMethod(name, method.Brief, method.Params, method.Return)...)
		lines = append(lines, "")
	}
	for _, name := range g.class.TranslateMethodNames() {
		method := g.class.TranslateMethods[name]
		lines = append(lines, g.virtualMethod(name, method.Brief, method.Params, method.Return)...)
		lines = append(lines, "")
	}

	masterName, masterBrief, masterRet := g.master.FunctionDesc()
	lines = append(lines, g.helper.Declare(FuncSpec{
		Name:   masterName,
		Brief:  masterBrief,
		Ret:    masterRet,
		Indent: declareIndent,
		Prefix: "static",
	})...)

	lines = append(lines, ClassClose(BaseClassName)...)
	lines = append(lines, "")
	lines = append(lines, NamespaceClose(NamespaceName)...)
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

func (g *BaseFileGenerator) baseCppFileLines() []string {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")

	includes := []string{"<memory>", "<cstring>", "<string>", HFileName("")}
	for _, lang := range g.langs.Names() {
		includes = append(includes, HFileName(lang))
	}
	lines = append(lines, IncludeBlock(includes)...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(CppFileName(""), doxyGroupName, doxyGroupDesc)...)
	lines = append(lines, "// NOLINTBEGIN", "")
	lines = append(lines, UsingNamespace(NamespaceName))

	for _, selector := range g.osSelectors {
		lines = append(lines, "")
		lines = append(lines, selector.FunctionLines(g.helper)...)
	}

	lines = append(lines, "")
	lines = append(lines, g.master.FunctionLines(g.helper, g.osSelectors)...)
	lines = append(lines, "", "// NOLINTEND", "")
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

func (g *BaseFileGenerator) selectUnittestFileLines(selector OsSelectGenerator) []string {
	fileName, _ := selector.UnittestFileName()

	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{"<gtest/gtest.h>", HFileName("")})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(fileName,
		doxyGroupName+"unittest", doxyGroupDesc+"unit test")...)
	lines = append(lines, "")
	lines = append(lines, UsingNamespace(NamespaceName))
	lines = append(lines, selector.UnittestLines(g.helper, g.class.IsoPropertyMethodName())...)
	lines = append(lines, "")
	lines = append(lines, testMainLines()...)
	lines = append(lines, "")
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

func (g *BaseFileGenerator) baseUnittestFileLines() []string {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{"<gtest/gtest.h>", HFileName("")})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(UnittestFileName(""),
		doxyGroupName+"unittest", doxyGroupDesc+"unit test")...)
	lines = append(lines, "")
	lines = append(lines, UsingNamespace(NamespaceName))
	lines = append(lines, "")
	lines = append(lines, g.master.UnittestLines(g.helper, g.class.IsoPropertyMethodName(), g.osSelectors)...)
	lines = append(lines, "")
	lines = append(lines, testMainLines()...)
	lines = append(lines, "")
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

// mockMethod emits one MOCK_METHOD declaration.
func (g *BaseFileGenerator) mockMethod(name string, params []descriptions.ParamDesc,
	ret descriptions.ReturnDesc, postfix string) string {
	cppRet, _ := TranslateReturn(ret)
	cppParams := TranslateParams(params)

	decl := spaces(declareIndent) + "MOCK_METHOD(" + cppRet.Type + ", " + name + ", "
	decl += paramSignature(cppParams)
	if len(params) == 0 {
		postfix = "const, " + postfix
	}
	return decl + ", (" + postfix + "));"
}

func (g *BaseFileGenerator) mockHFileLines() []string {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{
		"<cstddef>", "<cstdlib>", "<memory>", "<string>", "<gmock/gmock.h>", HFileName(""),
	})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(MockHFileName(""), doxyGroupName, doxyGroupDesc)...)
	lines = append(lines, "")
	lines = append(lines, NamespaceOpen(NamespaceName)...)
	lines = append(lines, "")
	lines = append(lines, g.helper.ClassOpen(g.mockClassName,
		"Mock Parser error/help string generation interface", "public "+BaseClassName, "")...)
	lines = append(lines, "    public:")
	lines = append(lines, g.helper.DefaultConstructors(g.mockClassName, declareIndent, true, true)...)

	for _, name := range g.class.PropertyMethodNames() {
		method := g.class.PropertyMethods[name]
		lines = append(lines, g.mockMethod(name, method.Params, method.Return, "final"))
	}
	for _, name := range g.class.TranslateMethodNames() {
		method := g.class.TranslateMethods[name]
		lines = append(lines, g.mockMethod(name, method.Params, method.Return, "final"))
	}

	lines = append(lines, ClassClose(g.mockClassName)...)
	lines = append(lines, "")
	lines = append(lines, NamespaceClose(NamespaceName)...)
	lines = append(lines, "")
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

func (g *BaseFileGenerator) mockCppFileLines() []string {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{MockHFileName("")})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(MockCppFileName(""), doxyGroupName, doxyGroupDesc)...)
	lines = append(lines, "")
	lines = append(lines,
		UsingNamespace(NamespaceName),
		"using ::testing::StrictMock;",
		"using ::testing::Return;",
		"using stringMockptr = StrictMock<"+g.mockClassName+">*;",
		"",
	)

	_, masterBrief, masterRet := g.master.FunctionDesc()
	lines = append(lines, g.helper.Define(FuncSpec{
		Name:      g.master.FunctionName(),
		Brief:     masterBrief,
		Ret:       masterRet,
		NoDoxygen: true,
	})...)
	lines = append(lines,
		"{",
		"    std::shared_ptr<"+BaseClassName+"> retPtr = std::make_shared< StrictMock<"+g.mockClassName+"> >();",
		"",
		"#if defined(CONSTRUCTOR_GET_HELP_STRING)",
		"    //Parent object constructor will call getHelpString, so setup the expected call",
		"    //before returning the pointer",
		"    stringMockptr stringMock = reinterpret_cast<stringMockptr> (retPtr.get());   // NOLINT",
		"    EXPECT_CALL(*stringMock, getHelpString()).WillOnce(Return(\"mock getHelpString\"));",
		"#endif //defined(CONSTRUCTOR_GET_HELP_STRING)",
		"",
		"    return retPtr;",
		"}",
	)
	return append(lines, g.helper.Doxy.GroupEnd()...)
}

// Generate emits the base class, selection, unit test and mock files
// into fs.
func (g *BaseFileGenerator) Generate(fs *FileSet, incSubdir, srcSubdir, testSubdir, mockSubdir string) error {
	g.incDirs = append(g.incDirs, incSubdir)

	g.hFileName = path.Join(incSubdir, HFileName(""))
	fs.Add(g.hFileName, g.baseHFileLines())

	g.cppFileName = path.Join(srcSubdir, CppFileName(""))
	fs.Add(g.cppFileName, g.baseCppFileLines())

	g.unittestBaseFile = path.Join(testSubdir, UnittestFileName(""))
	fs.Add(g.unittestBaseFile, g.baseUnittestFileLines())

	// The static selector's result is a compile time constant, so only
	// the dynamic OS selectors get their own unit test files.
	for _, selector := range g.osSelectors {
		if _, ok := selector.(*StaticSelectGenerator); ok {
			continue
		}
		fileName, targetName := selector.UnittestFileName()
		testPath := path.Join(testSubdir, fileName)
		g.unittestSelectFiles = append(g.unittestSelectFiles, UnittestSet{
			UnittestFile: testPath,
			TargetName:   targetName,
		})
		fs.Add(testPath, g.selectUnittestFileLines(selector))
	}

	g.mockHFileName = path.Join(mockSubdir, MockHFileName(""))
	fs.Add(g.mockHFileName, g.mockHFileLines())

	g.mockCppFileName = path.Join(mockSubdir, MockCppFileName(""))
	fs.Add(g.mockCppFileName, g.mockCppFileLines())
	return nil
}
