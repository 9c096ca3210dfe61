// Package generator emits the C++ parser string class sources, unit
// tests, mocks and CMake glue from the language and string class
// descriptions.
package generator

import "strings"

// Names shared by every generated file.
const (
	BaseClassName        = "ParserStringListInterface"
	NamespaceName        = "argparser"
	DynamicCompileSwitch = "DYNAMIC_INTERNATIONALIZATION"

	ParserStringType    = "parserstr"
	ParserCharType      = "parserchar"
	ParserStrStreamType = "parser_str_stream"
)

// Capitalize upper-cases the first letter only, matching the generated
// class name decoration for language names.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// LangClassName returns the class name for a language specific string
// class, or the base class name when lang is empty.
func LangClassName(lang string) string {
	if lang == "" {
		return BaseClassName
	}
	return BaseClassName + Capitalize(lang)
}

// LanguageListFileName is the default language description JSON file name.
func LanguageListFileName() string {
	return NamespaceName + "-lang-list.json"
}

// StringClassFileName is the default string class description JSON file name.
func StringClassFileName() string {
	return NamespaceName + "-strclass-def.json"
}

// HFileName returns the header file name for lang, or the base class
// header when lang is empty.
func HFileName(lang string) string {
	return LangClassName(lang) + ".h"
}

// CppFileName returns the source file name for lang.
func CppFileName(lang string) string {
	return LangClassName(lang) + ".cpp"
}

// UnittestFileName returns the unit test source file name for lang.
func UnittestFileName(lang string) string {
	return LangClassName(lang) + "_test.cpp"
}

// UnittestTargetName returns the unit test build target name for lang.
func UnittestTargetName(lang string) string {
	return LangClassName(lang) + "_test"
}

// MockHFileName returns the mock header file name for lang.
func MockHFileName(lang string) string {
	return "mock_" + LangClassName(lang) + ".h"
}

// MockCppFileName returns the mock source file name for lang.
func MockCppFileName(lang string) string {
	return "mock_" + LangClassName(lang) + ".cpp"
}
