package generator

import (
	"fmt"
	"path"

	"github.com/randaleike/argparse-language-autogen/descriptions"
	"github.com/randaleike/argparse-language-autogen/template"
)

const (
	doxyGroupName = "LocalLanguageSelection"
	doxyGroupDesc = "Local language detection and selection utility"

	declareIndent  = 8
	functionIndent = 4
)

// testParamValues supplies the canned argument values used in generated
// unit tests, keyed by parameter name.
var testParamValues = map[string]struct {
	value  string
	isText bool
}{
	"keyString":     {"--myKey", true},
	"envKeyString":  {"MY_ENV_KEY", true},
	"jsonKeyString": {"jsonkey:", true},
	"xmlKeyString":  {"<xmlkey>", true},
	"nargs":         {"3", false},
	"nargsExpected": {"2", false},
	"nargsFound":    {"1", false},
	"vargRange":     {"<-100:100>", true},
	"vargType":      {"integer", true},
	"valueString":   {"23", true},
}

// paramTestValue renders the canned test value as a C++ call argument.
func paramTestValue(name string) string {
	if entry, ok := testParamValues[name]; ok {
		if entry.isText {
			return "\"" + entry.value + "\""
		}
		return entry.value
	}
	return "42"
}

// paramTestText returns the raw substitution text for expected strings.
func paramTestText(name string) string {
	if entry, ok := testParamValues[name]; ok {
		return entry.value
	}
	return "42"
}

// langFileNames records the generated file paths for one language.
type langFileNames struct {
	includeFile  string
	sourceFile   string
	unittestFile string
}

// LangFileGenerator emits the language specific string class header,
// source and unit test files.
type LangFileGenerator struct {
	helper *CppHelper
	langs  *descriptions.LanguageList
	class  *descriptions.StringClass
	owner  string

	toolName  string
	files     map[string]*langFileNames
	langOrder []string
	incDirs   []string
}

// NewLangFileGenerator builds a generator for every defined language.
func NewLangFileGenerator(langs *descriptions.LanguageList, class *descriptions.StringClass,
	owner, eulaName string) (*LangFileGenerator, error) {
	helper, err := NewCppHelper(eulaName)
	if err != nil {
		return nil, err
	}
	return &LangFileGenerator{
		helper:   helper,
		langs:    langs,
		class:    class,
		owner:    owner,
		toolName: "GenerateLangFilesV1.0.0.0",
		files:    map[string]*langFileNames{},
	}, nil
}

func (g *LangFileGenerator) names(lang string) *langFileNames {
	entry, ok := g.files[lang]
	if !ok {
		entry = &langFileNames{}
		g.files[lang] = entry
		g.langOrder = append(g.langOrder, lang)
	}
	return entry
}

// CmakeLangHFileNames lists the generated header paths for cmake.
func (g *LangFileGenerator) CmakeLangHFileNames() []string {
	var out []string
	for _, lang := range g.langOrder {
		out = append(out, g.files[lang].includeFile)
	}
	return out
}

// CmakeLangLibFileNames lists the generated source paths for cmake.
func (g *LangFileGenerator) CmakeLangLibFileNames() []string {
	var out []string
	for _, lang := range g.langOrder {
		out = append(out, g.files[lang].sourceFile)
	}
	return out
}

// CmakeIncludeDirs lists the header subdirectories for cmake.
func (g *LangFileGenerator) CmakeIncludeDirs() []string {
	return g.incDirs
}

// UnittestSet describes one language unit test build target.
type UnittestSet struct {
	Language     string
	SourceFile   string
	UnittestFile string
	TargetName   string
}

// CmakeUnittestSets lists the per-language unit test builds for cmake.
func (g *LangFileGenerator) CmakeUnittestSets() []UnittestSet {
	var sets []UnittestSet
	for _, lang := range g.langOrder {
		entry := g.files[lang]
		sets = append(sets, UnittestSet{
			Language:     lang,
			SourceFile:   entry.sourceFile,
			UnittestFile: entry.unittestFile,
			TargetName:   UnittestTargetName(lang),
		})
	}
	return sets
}

// propertyCode builds the inline body of a property accessor for lang.
func (g *LangFileGenerator) propertyCode(lang string, method descriptions.PropertyMethod) ([]string, error) {
	values, err := g.langs.PropertyValues(lang, method.Property)
	if err != nil {
		return nil, err
	}
	_, isText := TranslateType(method.Return.Type, false)

	if method.Return.IsList {
		retType, _ := TranslateType(method.Return.Type, true)
		code := []string{retType + " returnData;"}
		for _, value := range values {
			if isText {
				code = append(code, AddStringListStatement("returnData", value))
			} else {
				code = append(code, AddValueListStatement("returnData", value))
			}
		}
		return append(code, "return returnData;"), nil
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("property %s of %s: expected a single value, got %d",
			method.Property, lang, len(values))
	}
	if isText {
		return []string{StringReturnStatement(values[0])}, nil
	}
	return []string{ValueReturnStatement(values[0])}, nil
}

// translateCode builds the stream assembly body of a translate method.
func (g *LangFileGenerator) translateCode(text descriptions.TranslateText) string {
	stream := template.AssembleStream([]template.Token(text), "<<")
	code := ParserStrStreamType + " " + ParserStringType + "; "
	if stream != "" {
		code += ParserStringType + " << " + stream + "; "
	}
	code += "return " + ParserStringType + ".str();"
	return code
}

// methodPostfix returns the declaration postfix, forcing const on
// parameterless methods.
func methodPostfix(params []descriptions.ParamDesc, postfix string) string {
	if len(params) > 0 {
		return postfix
	}
	if postfix == "" {
		return "const"
	}
	return "const " + postfix
}

func (g *LangFileGenerator) hFileLines(lang string) []string {
	className := LangClassName(lang)

	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{"<cstdio>", "<cstring>", HFileName("")})...)
	lines = append(lines, "")
	lines = append(lines, UsingNamespace(NamespaceName))
	lines = append(lines, g.helper.ClassOpen(className,
		"Language specific parser error/help string generation interface",
		"public "+BaseClassName, "final")...)
	lines = append(lines, "    public:")
	lines = append(lines, g.helper.DefaultConstructors(className, declareIndent, false, true)...)

	for _, name := range g.class.PropertyMethodNames() {
		method := g.class.PropertyMethods[name]
		ret, _ := TranslateReturn(method.Return)
		lines = append(lines, g.helper.Declare(FuncSpec{
			Name:      name,
			Brief:     method.Brief,
			Params:    TranslateParams(method.Params),
			Ret:       &ret,
			Indent:    declareIndent,
			NoDoxygen: true,
			Postfix:   methodPostfix(method.Params, "final"),
		})...)
	}
	lines = append(lines, "")

	for _, name := range g.class.TranslateMethodNames() {
		method := g.class.TranslateMethods[name]
		ret, _ := TranslateReturn(method.Return)
		lines = append(lines, g.helper.Declare(FuncSpec{
			Name:      name,
			Brief:     method.Brief,
			Params:    TranslateParams(method.Params),
			Ret:       &ret,
			Indent:    declareIndent,
			NoDoxygen: true,
			Postfix:   methodPostfix(method.Params, "final"),
		})...)
	}

	return append(lines, ClassClose(className)...)
}

func (g *LangFileGenerator) cppFileLines(lang string) ([]string, error) {
	className := LangClassName(lang)
	entry, _ := g.langs.Entry(lang)

	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{"<sstream>", HFileName(""), HFileName(lang)})...)
	lines = append(lines, UsingNamespace(NamespaceName))
	lines = append(lines, "using "+ParserStrStreamType+" = std::stringstream;", "")
	lines = append(lines, g.helper.Doxy.Defgroup(CppFileName(lang), doxyGroupName, doxyGroupDesc)...)
	lines = append(lines, "")

	appendBody := func(code []string) {
		if len(code) == 1 {
			lines = append(lines, "{"+code[0]+"}")
			return
		}
		lines = append(lines, "{")
		for _, line := range code {
			lines = append(lines, "    "+line)
		}
		lines = append(lines, "}")
	}

	for _, name := range g.class.PropertyMethodNames() {
		method := g.class.PropertyMethods[name]
		ret, _ := TranslateReturn(method.Return)
		lines = append(lines, g.helper.Define(FuncSpec{
			Name:    className + "::" + name,
			Brief:   method.Brief,
			Params:  TranslateParams(method.Params),
			Ret:     &ret,
			Postfix: methodPostfix(method.Params, ""),
		})...)
		code, err := g.propertyCode(lang, method)
		if err != nil {
			return nil, err
		}
		appendBody(code)
	}
	lines = append(lines, "")

	for _, name := range g.class.TranslateMethodNames() {
		method := g.class.TranslateMethods[name]
		text, _, ok := g.class.TranslationOrBase(name, entry.IsoCode)
		if !ok {
			return nil, fmt.Errorf("translate method %s: no translations defined", name)
		}
		ret, _ := TranslateReturn(method.Return)
		lines = append(lines, g.helper.Define(FuncSpec{
			Name:    className + "::" + name,
			Brief:   method.Brief,
			Params:  TranslateParams(method.Params),
			Ret:     &ret,
			Postfix: methodPostfix(method.Params, ""),
		})...)
		lines = append(lines, "{"+g.translateCode(text)+"}")
	}

	lines = append(lines, "")
	return append(lines, g.helper.Doxy.GroupEnd()...), nil
}

// callArgs renders the canned test call argument list.
func callArgs(params []descriptions.ParamDesc) string {
	args := ""
	for i, param := range params {
		if i > 0 {
			args += ", "
		}
		args += paramTestValue(param.Name)
	}
	return args
}

func (g *LangFileGenerator) propertyUnittest(lang, methodName string) ([]string, error) {
	method := g.class.PropertyMethods[methodName]
	className := LangClassName(lang)
	retType, isText := TranslateType(method.Return.Type, method.Return.IsList)

	values, err := g.langs.PropertyValues(lang, method.Property)
	if err != nil {
		return nil, err
	}

	code := []string{
		"TEST(" + className + ", fetch" + methodName + ")",
		"{",
		"    " + className + " testvar;",
		"    " + retType + " output = testvar." + methodName + "(" + callArgs(method.Params) + ");",
	}
	if method.Return.IsList {
		code = append(code, "    for (auto const &item : output)", "    {")
		for _, value := range values {
			if isText {
				code = append(code, "        EXPECT_STREQ(\""+value+"\", item.c_str());")
			} else {
				code = append(code, "        EXPECT_EQ("+value+", item);")
			}
		}
		code = append(code, "    }")
	} else if isText {
		code = append(code, "    EXPECT_STREQ(\""+values[0]+"\", output.c_str());")
	} else {
		code = append(code, "    EXPECT_EQ("+values[0]+", output);")
	}
	return append(code, "}"), nil
}

func (g *LangFileGenerator) translateUnittest(lang, methodName string) ([]string, error) {
	method := g.class.TranslateMethods[methodName]
	className := LangClassName(lang)
	entry, _ := g.langs.Entry(lang)

	text, _, ok := g.class.TranslationOrBase(methodName, entry.IsoCode)
	if !ok {
		return nil, fmt.Errorf("translate method %s: no translations defined", methodName)
	}

	substitutions := map[string]string{}
	for _, param := range method.Params {
		substitutions[param.Name] = paramTestText(param.Name)
	}
	expected := template.AssembleTestReturn([]template.Token(text), substitutions)

	retType, _ := TranslateType(method.Return.Type, method.Return.IsList)
	return []string{
		"TEST(" + className + ", print" + methodName + ")",
		"{",
		"    " + className + " testvar;",
		"    " + retType + " output = testvar." + methodName + "(" + callArgs(method.Params) + ");",
		"    EXPECT_STREQ(\"" + expected + "\", output.c_str());",
		"}",
	}, nil
}

func (g *LangFileGenerator) unittestFileLines(lang string) ([]string, error) {
	lines := g.helper.FileHeader(g.toolName, 2025, g.owner)
	lines = append(lines, "")
	lines = append(lines, IncludeBlock([]string{
		"<cstdio>", "<cstring>", "<sstream>", "<gtest/gtest.h>", HFileName(""), HFileName(lang),
	})...)
	lines = append(lines, "")
	lines = append(lines, g.helper.Doxy.Defgroup(UnittestFileName(lang),
		doxyGroupName+lang+"unittest", doxyGroupDesc+" "+lang+" unit test")...)
	lines = append(lines, "")
	lines = append(lines, UsingNamespace(NamespaceName))
	lines = append(lines, "using "+ParserStrStreamType+" = std::stringstream;", "")
	lines = append(lines, "// NOLINTBEGIN")

	for _, name := range g.class.PropertyMethodNames() {
		test, err := g.propertyUnittest(lang, name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, test...)
		lines = append(lines, "")
	}
	for _, name := range g.class.TranslateMethodNames() {
		test, err := g.translateUnittest(lang, name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, test...)
		lines = append(lines, "")
	}

	lines = append(lines, "// NOLINTEND")
	lines = append(lines, testMainLines()...)
	lines = append(lines, "")
	return append(lines, g.helper.Doxy.GroupEnd()...), nil
}

// testMainLines emits the GoogleTest main function.
func testMainLines() []string {
	return []string{
		"// Execute the tests",
		"int main(int argc, char **argv)",
		"{",
		"    ::testing::InitGoogleTest(&argc, argv);",
		"    return RUN_ALL_TESTS();",
		"}",
	}
}

// Generate emits the header, source and unit test files for every
// defined language into fs.
func (g *LangFileGenerator) Generate(fs *FileSet, incSubdir, srcSubdir, testSubdir string) error {
	g.incDirs = append(g.incDirs, incSubdir)
	for _, lang := range g.langs.Names() {
		hPath := path.Join(incSubdir, HFileName(lang))
		g.names(lang).includeFile = hPath
		fs.Add(hPath, g.hFileLines(lang))

		cppLines, err := g.cppFileLines(lang)
		if err != nil {
			return err
		}
		cppPath := path.Join(srcSubdir, CppFileName(lang))
		g.names(lang).sourceFile = cppPath
		fs.Add(cppPath, cppLines)

		testLines, err := g.unittestFileLines(lang)
		if err != nil {
			return err
		}
		testPath := path.Join(testSubdir, UnittestFileName(lang))
		g.names(lang).unittestFile = testPath
		fs.Add(testPath, testLines)
	}
	return nil
}
