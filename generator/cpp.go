package generator

import (
	"strings"
	"time"

	"github.com/randaleike/argparse-language-autogen/comment"
	"github.com/randaleike/argparse-language-autogen/copyright"
	"github.com/randaleike/argparse-language-autogen/descriptions"
)

// cppType maps a generic description type to its C++ rendering. Unknown
// generic types pass through unchanged as non-text values.
var cppTypeMatrix = map[string]struct {
	cppName string
	isText  bool
}{
	"string":   {"parserstr", true},
	"text":     {"parserstr", true},
	"size":     {"size_t", false},
	"integer":  {"int", false},
	"unsigned": {"unsigned", false},
	"LANID":    {"LANGID", false},
}

// ListType wraps a C++ type in the generated list container.
func ListType(typeName string) string {
	return "std::list<" + typeName + ">"
}

// TranslateType converts a generic type to the C++ type and reports
// whether values of the type are text.
func TranslateType(genericType string, isList bool) (string, bool) {
	entry, known := cppTypeMatrix[genericType]
	cppName := genericType
	isText := false
	if known {
		cppName = entry.cppName
		isText = entry.isText
	}
	if isList {
		return ListType(cppName), isText
	}
	return cppName, isText
}

// TranslateReturn converts a generic return description to C++ types.
func TranslateReturn(ret descriptions.ReturnDesc) (descriptions.ReturnDesc, bool) {
	cppName, isText := TranslateType(ret.Type, ret.IsList)
	return descriptions.ReturnDesc{Type: cppName, Desc: ret.Desc, IsList: ret.IsList}, isText
}

// TranslateParams converts generic parameter descriptions to C++ types.
func TranslateParams(params []descriptions.ParamDesc) []descriptions.ParamDesc {
	out := make([]descriptions.ParamDesc, 0, len(params))
	for _, param := range params {
		cppName, _ := TranslateType(param.Type, param.IsList)
		out = append(out, descriptions.ParamDesc{
			Name: param.Name, Type: cppName, Desc: param.Desc, IsList: param.IsList,
		})
	}
	return out
}

// FuncSpec describes one C++ function for declaration or definition
// emission. Params and Ret carry C++ types, not generic ones.
type FuncSpec struct {
	Name      string
	Brief     string
	LongDesc  string
	Params    []descriptions.ParamDesc
	Ret       *descriptions.ReturnDesc
	Indent    int
	NoDoxygen bool
	Prefix    string
	Postfix   string
	Inline    []string
}

// CppHelper emits the shared C++ constructs of all generated files.
type CppHelper struct {
	Doxy      *DoxyGenerator
	copyright *copyright.Generator
	eula      *Eula
}

// NewCppHelper builds a helper using the named EULA, defaulting to MIT.
func NewCppHelper(eulaName string) (*CppHelper, error) {
	eula, err := NewEula(eulaName)
	if err != nil {
		return nil, err
	}
	return &CppHelper{
		Doxy:      NewDoxyGenerator(),
		copyright: copyright.NewGenerator(nil),
		eula:      eula,
	}, nil
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}

func paramSignature(params []descriptions.ParamDesc) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.Type+" "+param.Name)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Declare emits a function declaration with its doxygen comment and
// optional inline body.
func (h *CppHelper) Declare(spec FuncSpec) []string {
	var lines []string
	if !spec.NoDoxygen {
		lines = append(lines, h.Doxy.MethodComment(spec.Brief, spec.Params, spec.Ret,
			spec.LongDesc, spec.Indent)...)
	}

	pad := strings.Repeat(" ", spec.Indent)
	funcLine := pad
	if spec.Prefix != "" {
		funcLine += spec.Prefix + " "
	}
	if spec.Ret != nil {
		funcLine += spec.Ret.Type + " "
	}
	funcLine += spec.Name + paramSignature(spec.Params)
	if spec.Postfix != "" {
		funcLine += " " + spec.Postfix
	}

	if spec.Inline == nil {
		return append(lines, funcLine+";")
	}
	lines = append(lines, funcLine)
	if len(spec.Inline) == 1 {
		return append(lines, pad+"{"+spec.Inline[0]+"}")
	}
	lines = append(lines, pad+"{")
	bodyPad := strings.Repeat(" ", spec.Indent+4)
	for _, code := range spec.Inline {
		lines = append(lines, bodyPad+code)
	}
	return append(lines, pad+"}")
}

// Define emits a function definition opening with its doxygen comment.
// The body and closing brace are the caller's responsibility.
func (h *CppHelper) Define(spec FuncSpec) []string {
	var lines []string
	if !spec.NoDoxygen {
		lines = append(lines, h.Doxy.MethodComment(spec.Brief, spec.Params, spec.Ret,
			spec.LongDesc, 0)...)
	}

	var funcLine string
	if spec.Prefix != "" {
		funcLine += spec.Prefix + " "
	}
	if spec.Ret != nil {
		funcLine += spec.Ret.Type + " "
	}
	funcLine += spec.Name + paramSignature(spec.Params)
	if spec.Postfix != "" {
		funcLine += " " + spec.Postfix
	}
	return append(lines, funcLine)
}

// EndFunction closes a function definition with a trailing name comment.
func (h *CppHelper) EndFunction(name string) string {
	return "} // end of " + name + "()"
}

// FileHeader builds the boxed header comment carrying the copyright
// line, the EULA and the autogeneration warning.
func (h *CppHelper) FileHeader(toolName string, startYear int, owner string) []string {
	var body []string
	if owner != "" {
		currentYear := time.Now().Year()
		body = append(body, h.copyright.CreateNew(owner, startYear, currentYear))
		body = append(body, "")
		body = append(body, h.eula.FormatName())
		body = append(body, "")
		body = append(body, h.eula.FormatText()...)
		body = append(body, "")
	}
	body = append(body, "This file was autogenerated by "+toolName+" do not edit")
	body = append(body, "")

	markers := comment.Markers{
		BlockStart: "/*", BlockEnd: "*/", BlockLineStart: "* ", SingleLine: "//",
	}
	gen := comment.NewGenerator(markers, comment.WithLineLength(80))

	var header []string
	header = append(header, gen.BlockHeader(1, '=')...)
	for _, line := range body {
		header = append(header, strings.TrimRight(gen.Wrap(line, ' '), " "))
	}
	return append(header, gen.BlockFooter(1, '=')...)
}

// Include renders one include directive; names carrying angle brackets
// are system includes.
func Include(name string) string {
	if strings.Contains(name, "<") {
		return "#include " + name
	}
	return "#include \"" + name + "\""
}

// IncludeBlock renders the pragma and include directives opening a file.
func IncludeBlock(names []string) []string {
	block := []string{"#pragma once", "// Includes"}
	for _, name := range names {
		block = append(block, Include(name))
	}
	return block
}

// NamespaceOpen starts a namespace scope.
func NamespaceOpen(name string) []string {
	return []string{"namespace " + name + " {"}
}

// NamespaceClose ends a namespace scope.
func NamespaceClose(name string) []string {
	return []string{"}; // end of namespace " + name}
}

// UsingNamespace emits a using directive.
func UsingNamespace(name string) string {
	return "using namespace " + name + ";"
}

// ClassOpen emits the class comment and opening braces.
func (h *CppHelper) ClassOpen(className, classDesc, inheritance, decoration string) []string {
	var lines []string
	if classDesc != "" {
		lines = append(lines, h.Doxy.ClassComment(classDesc, 0)...)
	}
	classLine := "class " + className
	if decoration != "" {
		classLine += " " + decoration
	}
	if inheritance != "" {
		classLine += " : " + inheritance
	}
	return append(lines, classLine, "{")
}

// ClassClose emits the class closing brace with a trailing name comment.
func ClassClose(className string) []string {
	return []string{"}; // end of " + className + " class"}
}

// DefaultConstructors emits the defaulted constructor, copy and move
// operations and destructor declarations for className.
func (h *CppHelper) DefaultConstructors(className string, indent int, virtualDtor, noDoxygen bool) []string {
	otherRef := []descriptions.ParamDesc{{
		Name: "other", Type: "const " + className + "&", Desc: "Reference to object to copy",
	}}
	otherMove := []descriptions.ParamDesc{{
		Name: "other", Type: className + "&&", Desc: "Reference to object to move",
	}}
	equateRet := &descriptions.ReturnDesc{Type: className + "&", Desc: "*this"}

	dtorPrefix := ""
	if virtualDtor {
		dtorPrefix = "virtual"
	}

	specs := []FuncSpec{
		{Name: className, Brief: "Construct a new " + className + " object"},
		{Name: className, Brief: "Copy constructor for a new " + className + " object", Params: otherRef},
		{Name: className, Brief: "Move constructor for a new " + className + " object", Params: otherMove},
		{Name: "operator=", Brief: "Equate constructor for a new " + className + " object", Params: otherRef, Ret: equateRet},
		{Name: "operator=", Brief: "Equate move constructor for a new " + className + " object", Params: otherMove, Ret: equateRet},
		{Name: "~" + className, Brief: "Destructor for " + className + " object", Prefix: dtorPrefix},
	}

	var lines []string
	for _, spec := range specs {
		spec.Indent = indent
		spec.NoDoxygen = noDoxygen
		spec.Postfix = "= default"
		lines = append(lines, h.Declare(spec)...)
		if !noDoxygen {
			lines = append(lines, "")
		}
	}
	if noDoxygen {
		lines = append(lines, "")
	}
	return lines
}

// Inline statement builders for generated method bodies.

// AddStringListStatement appends a quoted value to a list variable.
func AddStringListStatement(listName, value string) string {
	return listName + ".emplace_back(\"" + value + "\");"
}

// AddValueListStatement appends a raw value to a list variable.
func AddValueListStatement(listName, value string) string {
	return listName + ".emplace_back(" + value + ");"
}

// StringReturnStatement returns a quoted literal.
func StringReturnStatement(value string) string {
	return "return (\"" + value + "\");"
}

// ValueReturnStatement returns a raw value.
func ValueReturnStatement(value string) string {
	return "return " + value + ";"
}
