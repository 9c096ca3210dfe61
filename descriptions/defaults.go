package descriptions

// SeedStringClass populates class with the isoCode accessor and the
// stock argument parser message builders, all with English base text.
// Existing entries with the same names are replaced.
func SeedStringClass(class *StringClass) error {
	isoProp, _ := PropertyByKey("isoCode")
	class.AddPropertyMethod(isoProp)

	type seed struct {
		name     string
		brief    string
		params   []ParamDesc
		retDesc  string
		template string
	}
	seeds := []seed{
		{"getNotListTypeMessage", "Return non-list varg error message",
			[]ParamDesc{{Name: "nargs", Type: "integer", Desc: "input nargs value"}},
			"Non-list varg error message",
			"Only list type arguments can have an argument count of @nargs@"},
		{"getUnknownArgumentMessage", "Return unknown parser key error message",
			[]ParamDesc{{Name: "keyString", Type: "string", Desc: "Unknown key"}},
			"Unknown parser key error message",
			"Unknown argument: @keyString@"},
		{"getInvalidAssignmentMessage", "Return varg invalid assignment error message",
			[]ParamDesc{{Name: "keyString", Type: "string", Desc: "Error key"}},
			"Varg key invalid assignment error message",
			"\"@keyString@\" invalid assignment"},
		{"getAssignmentFailedMessage", "Return varg assignment failed error message",
			[]ParamDesc{
				{Name: "keyString", Type: "string", Desc: "Error key"},
				{Name: "valueString", Type: "string", Desc: "Assignment value"}},
			"Varg key assignment failed error message",
			"\"@keyString@\", \"@valueString@\" assignment failed"},
		{"getMissingAssignmentMessage", "Return varg missing assignment error message",
			[]ParamDesc{{Name: "keyString", Type: "string", Desc: "Error key"}},
			"Varg key missing value assignment error message",
			"\"@keyString@\" missing assignment value"},
		{"getMissingListAssignmentMessage", "Return varg missing list value assignment error message",
			[]ParamDesc{
				{Name: "keyString", Type: "string", Desc: "Error key"},
				{Name: "nargsExpected", Type: "size", Desc: "Expected assignment list length"},
				{Name: "nargsFound", Type: "size", Desc: "Input assignment list length"}},
			"Varg key input value list too short error message",
			"\"@keyString@\" missing assignment value(s). Expected: @nargsExpected@ found: @nargsFound@ arguments"},
		{"getTooManyAssignmentMessage", "Return varg too many assignment values error message",
			[]ParamDesc{
				{Name: "keyString", Type: "string", Desc: "Error key"},
				{Name: "nargsExpected", Type: "size", Desc: "Expected assignment list length"},
				{Name: "nargsFound", Type: "size", Desc: "Input assignment list length"}},
			"Varg key input value list too long error message",
			"\"@keyString@\" too many assignment values. Expected: @nargsExpected@ found: @nargsFound@ arguments"},
		{"getMissingArgumentMessage", "Return required varg missing error message",
			[]ParamDesc{{Name: "keyString", Type: "string", Desc: "Error key"}},
			"Required varg key missing error message",
			"\"@keyString@\" required argument missing"},
		{"getArgumentCreationError", "Return parser add varg failure error message",
			[]ParamDesc{{Name: "keyString", Type: "string", Desc: "Error key"}},
			"Parser varg add failure message",
			"Argument add failed: @keyString@"},
		{"getUsageMessage", "Return usage help message",
			nil, "Usage help message", "Usage:"},
		{"getPositionalArgumentsMessage", "Return positional argument help message",
			nil, "Positional argument help message", "Positional Arguments:"},
		{"getSwitchArgumentsMessage", "Return optional argument help message",
			nil, "Optional argument help message", "Optional Arguments:"},
		{"getHelpString", "Return default help switch help message",
			nil, "Default help argument help message", "show this help message and exit"},
		{"getEnvArgumentsMessage", "Return environment parser argument help header",
			nil, "Environment parser argument help header message", "Defined Environment values:"},
		{"getEnvironmentNoFlags", "Return environment parser add flag varg failure error message",
			[]ParamDesc{{Name: "envKeyString", Type: "string", Desc: "Flag key"}},
			"Environment parser add flag varg failure message",
			"Environment value @envKeyString@ narg must be > 0"},
		{"getRequiredEnvironmentArgMissing", "Return environment parser required varg missing error message",
			[]ParamDesc{{Name: "envKeyString", Type: "string", Desc: "Flag key"}},
			"Environment parser required varg missing error message",
			"Environment value @envKeyString@ must be defined"},
		{"getJsonArgumentsMessage", "Return json parser argument help header",
			nil, "JSON parser argument help header message", "Available JSON argument values:"},
		{"getXmlArgumentsMessage", "Return xml parser argument help header",
			nil, "XML parser argument help header message", "Available XML argument values:"},
	}
	for _, s := range seeds {
		if err := class.AddTranslateMethod(s.name, s.brief, s.params, s.retDesc, "en", s.template); err != nil {
			return err
		}
	}
	return nil
}
