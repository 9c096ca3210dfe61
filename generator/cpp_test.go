package generator

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/randaleike/argparse-language-autogen/descriptions"
)

func TestTranslateType(t *testing.T) {
	tests := []struct {
		name         string
		genericType  string
		isList       bool
		expectedType string
		expectedText bool
	}{
		{name: "String", genericType: "string", expectedType: "parserstr", expectedText: true},
		{name: "Text", genericType: "text", expectedType: "parserstr", expectedText: true},
		{name: "Size", genericType: "size", expectedType: "size_t"},
		{name: "Integer", genericType: "integer", expectedType: "int"},
		{name: "Unsigned", genericType: "unsigned", expectedType: "unsigned"},
		{name: "TextList", genericType: "text", isList: true,
			expectedType: "std::list<parserstr>", expectedText: true},
		{name: "UnknownPassthrough", genericType: "LANGID", expectedType: "LANGID"},
		{name: "UnknownList", genericType: "LANGID", isList: true,
			expectedType: "std::list<LANGID>"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cppType, isText := TranslateType(test.genericType, test.isList)
			assert.Equal(t, test.expectedType, cppType)
			assert.Equal(t, test.expectedText, isText)
		})
	}
}

func TestDeclare(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	ret := &descriptions.ReturnDesc{Type: "parserstr", Desc: "ISO 639 language code"}
	lines := helper.Declare(FuncSpec{
		Name:      "getLangIsoCode",
		Ret:       ret,
		Indent:    8,
		NoDoxygen: true,
		Prefix:    "[[nodiscard]] virtual",
		Postfix:   "const = 0",
	})
	assert.Equal(t, []string{
		"        [[nodiscard]] virtual parserstr getLangIsoCode() const = 0;",
	}, lines)
}

func TestDeclareInline(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	ret := &descriptions.ReturnDesc{Type: "parserstr", Desc: "Value"}
	lines := helper.Declare(FuncSpec{
		Name:      "getValue",
		Ret:       ret,
		Indent:    4,
		NoDoxygen: true,
		Postfix:   "const",
		Inline:    []string{`return ("value");`},
	})
	assert.Equal(t, []string{
		"    parserstr getValue() const",
		`    {return ("value");}`,
	}, lines)
}

func TestDeclareInlineMultiLine(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	ret := &descriptions.ReturnDesc{Type: "std::list<parserstr>", Desc: "Values"}
	lines := helper.Declare(FuncSpec{
		Name:      "getValues",
		Ret:       ret,
		Indent:    4,
		NoDoxygen: true,
		Inline: []string{
			"std::list<parserstr> returnData;",
			`returnData.emplace_back("one");`,
			"return returnData;",
		},
	})
	assert.Equal(t, []string{
		"    std::list<parserstr> getValues()",
		"    {",
		"        std::list<parserstr> returnData;",
		`        returnData.emplace_back("one");`,
		"        return returnData;",
		"    }",
	}, lines)
}

func TestDefine(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	params := []descriptions.ParamDesc{
		{Name: "keyString", Type: "parserstr", Desc: "Key string"},
	}
	ret := &descriptions.ReturnDesc{Type: "parserstr", Desc: "Message"}
	lines := helper.Define(FuncSpec{
		Name:      "ParserStringListInterfaceEnglish::getUnknownArgumentMessage",
		Params:    params,
		Ret:       ret,
		NoDoxygen: true,
		Postfix:   "const",
	})
	assert.Equal(t, []string{
		"parserstr ParserStringListInterfaceEnglish::getUnknownArgumentMessage(parserstr keyString) const",
	}, lines)
	assert.Equal(t, "} // end of getUnknownArgumentMessage()",
		helper.EndFunction("getUnknownArgumentMessage"))
}

func TestFileHeader(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	header := helper.FileHeader("GenerateLangFilesV1.0.0.0", 2025, "Test Owner")
	joined := strings.Join(header, "\n")

	assert.Contains(t, joined, "Copyright (c) 2025")
	assert.Contains(t, joined, "Test Owner")
	assert.Contains(t, joined, "MIT License")
	assert.Contains(t, joined, `THE SOFTWARE IS PROVIDED "AS IS"`)
	assert.Contains(t, joined,
		"This file was autogenerated by GenerateLangFilesV1.0.0.0 do not edit")

	// Boxed header rows are filled to the full line length.
	assert.Equal(t, "/*"+strings.Repeat("=", 78), header[0])
	assert.Equal(t, "* "+strings.Repeat("=", 76)+"*/", header[len(header)-1])
}

func TestFileHeaderNoOwner(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	header := helper.FileHeader("GenerateLangFilesV1.0.0.0", 2025, "")
	joined := strings.Join(header, "\n")
	assert.NotContains(t, joined, "Copyright")
	assert.Contains(t, joined, "This file was autogenerated by")
}

func TestIncludeBlock(t *testing.T) {
	assert.Equal(t, "#include <cstring>", Include("<cstring>"))
	assert.Equal(t, `#include "ParserStringListInterface.h"`, Include("ParserStringListInterface.h"))

	block := IncludeBlock([]string{"<sstream>", "ParserStringListInterface.h"})
	assert.Equal(t, []string{
		"#pragma once",
		"// Includes",
		"#include <sstream>",
		`#include "ParserStringListInterface.h"`,
	}, block)
}

func TestNamespaceAndClass(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	assert.Equal(t, []string{"namespace argparser {"}, NamespaceOpen("argparser"))
	assert.Equal(t, []string{"}; // end of namespace argparser"}, NamespaceClose("argparser"))
	assert.Equal(t, "using namespace argparser;", UsingNamespace("argparser"))

	lines := helper.ClassOpen("ParserStringListInterfaceEnglish", "",
		"public ParserStringListInterface", "final")
	assert.Equal(t, []string{
		"class ParserStringListInterfaceEnglish final : public ParserStringListInterface",
		"{",
	}, lines)
	assert.Equal(t, []string{"}; // end of ParserStringListInterfaceEnglish class"},
		ClassClose("ParserStringListInterfaceEnglish"))
}

func TestDefaultConstructors(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	lines := helper.DefaultConstructors("TestClass", 8, true, true)
	expected := []string{
		"        TestClass() = default;",
		"        TestClass(const TestClass& other) = default;",
		"        TestClass(TestClass&& other) = default;",
		"        TestClass& operator=(const TestClass& other) = default;",
		"        TestClass& operator=(TestClass&& other) = default;",
		"        virtual ~TestClass() = default;",
		"",
	}
	assert.Equal(t, expected, lines)
}

func TestDefaultConstructorsWithDoxygen(t *testing.T) {
	helper, err := NewCppHelper("")
	assert.NoError(t, err)

	lines := helper.DefaultConstructors("TestClass", 8, false, false)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "@brief Construct a new TestClass object")
	assert.Contains(t, joined, "@brief Destructor for TestClass object")
	assert.Contains(t, joined, "        ~TestClass() = default;")
	assert.NotContains(t, joined, "virtual ~TestClass")
}

func TestStatementBuilders(t *testing.T) {
	assert.Equal(t, `returnData.emplace_back("AU");`, AddStringListStatement("returnData", "AU"))
	assert.Equal(t, "returnData.emplace_back(9);", AddValueListStatement("returnData", "9"))
	assert.Equal(t, `return ("en");`, StringReturnStatement("en"))
	assert.Equal(t, "return 42;", ValueReturnStatement("42"))
}
