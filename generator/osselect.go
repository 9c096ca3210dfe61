package generator

import (
	"fmt"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

// sharedPtrReturn is the return description of every language select
// function.
func sharedPtrReturn() *descriptions.ReturnDesc {
	return &descriptions.ReturnDesc{
		Type: "std::shared_ptr<" + BaseClassName + ">",
		Desc: "Shared pointer to " + BaseClassName + "<lang> based on OS local language",
	}
}

// makePtrReturn builds the shared pointer return statement for lang.
func makePtrReturn(lang string) string {
	return "return std::make_shared<" + LangClassName(lang) + ">();"
}

// OsSelectGenerator emits one OS specific language selection function
// and its unit tests.
type OsSelectGenerator interface {
	// FunctionName is the C++ selection function name.
	FunctionName() string
	// OsDynamicDefine is the preprocessor guard for the function.
	OsDynamicDefine() string
	// FunctionLines emits the guarded function definition.
	FunctionLines(h *CppHelper) []string
	// ReturnCallLines emits the master function's dispatch to this OS.
	ReturnCallLines(indent int) []string
	// UnittestExternLines emits the extern declaration block for tests.
	UnittestExternLines() []string
	// UnittestLines emits the selection function unit tests.
	UnittestLines(h *CppHelper, getIsoMethod string) []string
	// UnittestCallLines emits the expected-value setup in the master test.
	UnittestCallLines(checkVar string, indent int) []string
	// UnittestFileName returns the test file and build target names.
	UnittestFileName() (string, string)
}

func externDefinition(name string, param descriptions.ParamDesc) string {
	return "extern " + sharedPtrReturn().Type + " " + name + "(" + param.Type + " " + param.Name + ");"
}

func selectTestBody(h *CppHelper, blockName, testName, brief, callArg, expectedIso, getIsoMethod string) []string {
	lines := h.Doxy.MethodComment(brief, nil, nil, "", 0)
	lines = append(lines,
		"TEST("+blockName+", "+testName+")",
		"{",
		"    "+sharedPtrReturn().Type+" testVar = "+callArg+";",
		"    EXPECT_STREQ(\""+expectedIso+"\", testVar->"+getIsoMethod+"().c_str());",
		"}",
	)
	return lines
}

// LinuxSelectGenerator builds the LANG environment based selection
// function for Linux.
type LinuxSelectGenerator struct {
	langs *descriptions.LanguageList
	param descriptions.ParamDesc
}

// NewLinuxSelectGenerator returns the Linux selection generator.
func NewLinuxSelectGenerator(langs *descriptions.LanguageList) *LinuxSelectGenerator {
	return &LinuxSelectGenerator{
		langs: langs,
		param: descriptions.ParamDesc{
			Name: "langId", Type: "const char*",
			Desc: "Current LANG value from the program environment",
		},
	}
}

func (g *LinuxSelectGenerator) FunctionName() string {
	return "getParserStringListInterface_Linux"
}

func (g *LinuxSelectGenerator) osDefine() string {
	return "(defined(__linux__) || defined(__unix__))"
}

func (g *LinuxSelectGenerator) OsDynamicDefine() string {
	return "(" + g.osDefine() + " && defined(" + DynamicCompileSwitch + "))"
}

func (g *LinuxSelectGenerator) FunctionLines(h *CppHelper) []string {
	lines := []string{"#if " + g.OsDynamicDefine()}
	lines = append(lines, Include("<cstdlib>"), Include("<regex>"), "")
	lines = append(lines, h.Define(FuncSpec{
		Name:   g.FunctionName(),
		Brief:  "Determine the correct local language class from the input LANG environment setting",
		Params: []descriptions.ParamDesc{g.param},
		Ret:    sharedPtrReturn(),
	})...)
	lines = append(lines, "{")
	lines = append(lines,
		"    // Check for valid input",
		"    if (nullptr != "+g.param.Name+")",
		"    {",
		"        // Break the string into its components",
		"        std::cmatch searchMatch;",
		"        std::regex searchRegex(\"(^[a-z]{2})_([A-Z]{2})\\\\.(UTF[0-9]{1,2})\");",
		"        bool matched = std::regex_match("+g.param.Name+", searchMatch, searchRegex);",
		"        // Determine the language",
	)

	first := true
	for _, lang := range g.langs.Names() {
		entry := g.langs.Languages[lang]
		ifLine := "        else if (matched && (searchMatch[1].str() == \"" + entry.LangCode + "\"))"
		if first {
			ifLine = "        if (matched && (searchMatch[1].str() == \"" + entry.LangCode + "\"))"
			first = false
		}
		lines = append(lines, ifLine, "        {", "            "+makePtrReturn(lang), "        }")
	}

	defaultLang, _, _ := g.langs.Default()
	lines = append(lines,
		"        else //unknown language, use default language",
		"        {",
		"            "+makePtrReturn(defaultLang),
		"        }",
		"    }",
		"    else // null pointer input, use default language",
		"    {",
		"        "+makePtrReturn(defaultLang),
		"    } // end of if(nullptr != "+g.param.Name+")",
	)
	lines = append(lines, h.EndFunction(g.FunctionName()))
	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *LinuxSelectGenerator) ReturnCallLines(indent int) []string {
	pad := spaces(indent)
	return []string{
		pad + g.param.Type + " langId = getenv(\"LANG\");",
		pad + "return " + g.FunctionName() + "(langId);",
	}
}

func (g *LinuxSelectGenerator) UnittestExternLines() []string {
	return []string{
		"#if " + g.OsDynamicDefine(),
		externDefinition(g.FunctionName(), g.param),
		"#endif // " + g.OsDynamicDefine(),
	}
}

func (g *LinuxSelectGenerator) UnittestLines(h *CppHelper, getIsoMethod string) []string {
	lines := []string{
		"#if " + g.OsDynamicDefine(),
		externDefinition(g.FunctionName(), g.param),
	}

	test := func(testName, envString, expectedIso string) {
		brief := "Test " + g.FunctionName() + " " + envString + " selection case"
		call := g.FunctionName() + "(\"" + envString + "\")"
		lines = append(lines, selectTestBody(h, "LinuxSelectFunction", testName, brief,
			call, expectedIso, getIsoMethod)...)
		lines = append(lines, "")
	}

	for _, lang := range g.langs.Names() {
		entry := g.langs.Languages[lang]
		for _, region := range entry.LangRegions {
			test(Capitalize(lang)+"_"+region+"_Selection",
				entry.LangCode+"_"+region+".UTF-8", entry.IsoCode)
		}
		test(Capitalize(lang)+"_unknownRegion_Selection",
			entry.LangCode+"_XX.UTF-8", entry.IsoCode)
	}

	_, defaultEntry, _ := g.langs.Default()
	test("UnknownLanguageDefaultSelection", "xx_XX.UTF-8", defaultEntry.IsoCode)

	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *LinuxSelectGenerator) UnittestCallLines(checkVar string, indent int) []string {
	pad := spaces(indent)
	return []string{
		pad + g.param.Type + " langId = getenv(\"LANG\");",
		pad + sharedPtrReturn().Type + " " + checkVar + " = " + g.FunctionName() + "(langId);",
	}
}

func (g *LinuxSelectGenerator) UnittestFileName() (string, string) {
	return "LocalLanguageSelect_Linux_test.cpp", "LocalLanguageSelect_Linux_test"
}

// WindowsSelectGenerator builds the LANGID based selection function for
// Windows.
type WindowsSelectGenerator struct {
	langs *descriptions.LanguageList
	param descriptions.ParamDesc
}

// NewWindowsSelectGenerator returns the Windows selection generator.
func NewWindowsSelectGenerator(langs *descriptions.LanguageList) *WindowsSelectGenerator {
	return &WindowsSelectGenerator{
		langs: langs,
		param: descriptions.ParamDesc{
			Name: "langId", Type: "LANGID",
			Desc: "Return value from GetUserDefaultUILanguage() call",
		},
	}
}

func (g *WindowsSelectGenerator) FunctionName() string {
	return "getParserStringListInterface_Windows"
}

func (g *WindowsSelectGenerator) osDefine() string {
	return "(defined(_WIN64) || defined(_WIN32))"
}

func (g *WindowsSelectGenerator) OsDynamicDefine() string {
	return "(" + g.osDefine() + " && defined(" + DynamicCompileSwitch + "))"
}

func (g *WindowsSelectGenerator) FunctionLines(h *CppHelper) []string {
	lines := []string{"#if " + g.OsDynamicDefine()}
	lines = append(lines, Include("<windows.h>"), "")
	lines = append(lines, h.Define(FuncSpec{
		Name:   g.FunctionName(),
		Brief:  "Determine the correct local language class from the input LANGID value",
		Params: []descriptions.ParamDesc{g.param},
		Ret:    sharedPtrReturn(),
	})...)
	lines = append(lines, "{")
	lines = append(lines, "    switch("+g.param.Name+" & 0x0FF)", "    {")

	for _, lang := range g.langs.Names() {
		entry := g.langs.Languages[lang]
		for _, id := range entry.LangIDCodes {
			lines = append(lines, fmt.Sprintf("        case %#x:", id))
		}
		lines = append(lines, "            "+makePtrReturn(lang), "            break;")
	}

	defaultLang, _, _ := g.langs.Default()
	lines = append(lines,
		"        default:",
		"            "+makePtrReturn(defaultLang),
		"    }",
	)
	lines = append(lines, h.EndFunction(g.FunctionName()))
	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *WindowsSelectGenerator) ReturnCallLines(indent int) []string {
	pad := spaces(indent)
	return []string{
		pad + g.param.Type + " langId = GetUserDefaultUILanguage();",
		pad + "return " + g.FunctionName() + "(langId);",
	}
}

func (g *WindowsSelectGenerator) UnittestExternLines() []string {
	return []string{
		"#if " + g.OsDynamicDefine(),
		Include("<windows.h>"),
		externDefinition(g.FunctionName(), g.param),
		"#endif // " + g.OsDynamicDefine(),
	}
}

func (g *WindowsSelectGenerator) UnittestLines(h *CppHelper, getIsoMethod string) []string {
	lines := []string{
		"#if " + g.OsDynamicDefine(),
		externDefinition(g.FunctionName(), g.param),
	}

	test := func(testName string, langID int, expectedIso string) {
		brief := fmt.Sprintf("Test %s %d selection case", g.FunctionName(), langID)
		call := fmt.Sprintf("%s(%d)", g.FunctionName(), langID)
		lines = append(lines, selectTestBody(h, "WindowsSelectFunction", testName, brief,
			call, expectedIso, getIsoMethod)...)
		lines = append(lines, "")
	}

	for _, lang := range g.langs.Names() {
		entry := g.langs.Languages[lang]
		for _, langID := range entry.LangIDRegions {
			test(fmt.Sprintf("%s_%d_Selection", Capitalize(lang), langID), langID, entry.IsoCode)
		}
		for _, code := range entry.LangIDCodes {
			test(fmt.Sprintf("%s_unknownRegion_00%d_Selection", Capitalize(lang), code),
				code, entry.IsoCode)
			test(fmt.Sprintf("%s_unknownRegion_FF%d_Selection", Capitalize(lang), code),
				0xFF00+code, entry.IsoCode)
		}
	}

	_, defaultEntry, _ := g.langs.Default()
	test("UnknownLanguageDefaultSelection", 0, defaultEntry.IsoCode)

	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *WindowsSelectGenerator) UnittestCallLines(checkVar string, indent int) []string {
	pad := spaces(indent)
	return []string{
		pad + g.param.Type + " langId = GetUserDefaultUILanguage();",
		pad + sharedPtrReturn().Type + " " + checkVar + " = " + g.FunctionName() + "(langId);",
	}
}

func (g *WindowsSelectGenerator) UnittestFileName() (string, string) {
	return "LocalLanguageSelect_Windows_test.cpp", "LocalLanguageSelect_Windows_test"
}

// StaticSelectGenerator builds the compile switch based selection
// function used when dynamic selection is disabled.
type StaticSelectGenerator struct {
	langs *descriptions.LanguageList
}

// NewStaticSelectGenerator returns the static selection generator.
func NewStaticSelectGenerator(langs *descriptions.LanguageList) *StaticSelectGenerator {
	return &StaticSelectGenerator{langs: langs}
}

func (g *StaticSelectGenerator) FunctionName() string {
	return "getParserStringListInterface_Static"
}

func (g *StaticSelectGenerator) OsDynamicDefine() string {
	return "!defined(" + DynamicCompileSwitch + ")"
}

func (g *StaticSelectGenerator) FunctionLines(h *CppHelper) []string {
	lines := []string{"#if " + g.OsDynamicDefine()}
	lines = append(lines, h.Define(FuncSpec{
		Name:  g.FunctionName(),
		Brief: "Determine the correct local language class from the compile switch setting",
		Ret:   sharedPtrReturn(),
	})...)
	lines = append(lines, "{")

	first := true
	for _, lang := range g.langs.Names() {
		entry := g.langs.Languages[lang]
		ifLine := "  #elif defined(" + entry.CompileSwitch + ")"
		if first {
			ifLine = "  #if defined(" + entry.CompileSwitch + ")"
			first = false
		}
		lines = append(lines, ifLine, "    "+makePtrReturn(lang))
	}
	lines = append(lines,
		"  #else //undefined language compile switch, use default",
		"    #error one of the language compile switches must be defined",
		"  #endif //end of language compile switch chain",
	)
	lines = append(lines, h.EndFunction(g.FunctionName()))
	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *StaticSelectGenerator) ReturnCallLines(indent int) []string {
	return []string{spaces(indent) + "return " + g.FunctionName() + "();"}
}

func (g *StaticSelectGenerator) UnittestExternLines() []string {
	return []string{
		"#if " + g.OsDynamicDefine(),
		"extern " + sharedPtrReturn().Type + " " + g.FunctionName() + "();",
		"#endif // " + g.OsDynamicDefine(),
	}
}

func (g *StaticSelectGenerator) UnittestLines(h *CppHelper, getIsoMethod string) []string {
	// The selected language is fixed at compile time, so only the
	// default compile switch case is testable here.
	defaultLang, defaultEntry, _ := g.langs.Default()
	lines := []string{
		"#if " + g.OsDynamicDefine(),
		"extern " + sharedPtrReturn().Type + " " + g.FunctionName() + "();",
	}
	compileSwitch := defaultEntry.CompileSwitch
	lines = append(lines, "#if defined("+compileSwitch+")")
	lines = append(lines, selectTestBody(h, "StaticSelectFunction",
		Capitalize(defaultLang)+"_Static_Selection",
		"Test "+g.FunctionName()+" "+defaultLang+" compile switch case",
		g.FunctionName()+"()", defaultEntry.IsoCode, getIsoMethod)...)
	lines = append(lines, "#endif // defined("+compileSwitch+")")
	return append(lines, "#endif // "+g.OsDynamicDefine())
}

func (g *StaticSelectGenerator) UnittestCallLines(checkVar string, indent int) []string {
	return []string{
		spaces(indent) + sharedPtrReturn().Type + " " + checkVar + " = " + g.FunctionName() + "();",
	}
}

func (g *StaticSelectGenerator) UnittestFileName() (string, string) {
	return "LocalLanguageSelect_Static_test.cpp", "LocalLanguageSelect_Static_test"
}

// MasterSelectGenerator builds the OS dispatching selection method on
// the base class.
type MasterSelectGenerator struct {
	functionName string
}

// NewMasterSelectGenerator returns the master selection generator.
func NewMasterSelectGenerator() *MasterSelectGenerator {
	return &MasterSelectGenerator{functionName: "getLocalParserStringListInterface"}
}

// BaseFunctionName is the undecorated method name.
func (g *MasterSelectGenerator) BaseFunctionName() string {
	return g.functionName
}

// FunctionName is the class qualified method name.
func (g *MasterSelectGenerator) FunctionName() string {
	return BaseClassName + "::" + g.functionName
}

func (g *MasterSelectGenerator) brief() string {
	return "Determine the OS use OS specific functions to determine the correct local language " +
		"based on the OS specific local language setting and return the correct class object"
}

// FunctionDesc returns the declaration pieces for the base class header.
func (g *MasterSelectGenerator) FunctionDesc() (string, string, *descriptions.ReturnDesc) {
	return g.functionName, g.brief(), sharedPtrReturn()
}

// FunctionLines emits the master dispatch function definition.
func (g *MasterSelectGenerator) FunctionLines(h *CppHelper, selectors []OsSelectGenerator) []string {
	lines := h.Define(FuncSpec{
		Name:  g.FunctionName(),
		Brief: g.brief(),
		Ret:   sharedPtrReturn(),
	})
	lines = append(lines, "{")

	for i, selector := range selectors {
		guard := "#elif "
		if i == 0 {
			guard = "#if "
		}
		lines = append(lines, guard+selector.OsDynamicDefine())
		lines = append(lines, selector.ReturnCallLines(functionIndent)...)
	}
	lines = append(lines,
		"#elif defined("+DynamicCompileSwitch+")",
		"    #error No dynamic language generation method defined for this OS",
		"#else // not defined("+DynamicCompileSwitch+")",
		"    #error Dynamic language generation must be defined",
		"#endif // defined os and defined("+DynamicCompileSwitch+")",
	)
	return append(lines, h.EndFunction(g.FunctionName()))
}

// UnittestLines emits the master dispatch unit test.
func (g *MasterSelectGenerator) UnittestLines(h *CppHelper, getIsoMethod string, selectors []OsSelectGenerator) []string {
	var lines []string
	for _, selector := range selectors {
		lines = append(lines, selector.UnittestExternLines()...)
	}
	lines = append(lines, "")

	lines = append(lines, h.Doxy.MethodComment("Test "+g.FunctionName()+" selection case", nil, nil, "", 0)...)
	lines = append(lines, "TEST(SelectFunction, TestLocalSelectMethod)", "{")

	const expectedVar = "localStringParser"
	for i, selector := range selectors {
		guard := "#elif "
		if i == 0 {
			guard = "#if "
		}
		lines = append(lines, guard+selector.OsDynamicDefine())
		lines = append(lines, "    // Get the expected value")
		lines = append(lines, selector.UnittestCallLines(expectedVar, functionIndent)...)
	}
	lines = append(lines,
		"#elif defined("+DynamicCompileSwitch+")",
		"    #error No dynamic language generation defined for this OS",
		"#else // not defined("+DynamicCompileSwitch+")",
		"    #error Dynamic language generation must be defined",
		"#endif // defined os and defined("+DynamicCompileSwitch+")",
		"",
		"    // Generate the test language string object",
		"    "+sharedPtrReturn().Type+" testVar = "+g.FunctionName()+"();",
		"    EXPECT_STREQ("+expectedVar+"->"+getIsoMethod+"().c_str(), testVar->"+getIsoMethod+"().c_str());",
	)
	return append(lines, g.closeTest(h))
}

func (g *MasterSelectGenerator) closeTest(h *CppHelper) string {
	return h.EndFunction(g.FunctionName())
}
