package errors

// template defines a registered error type.
type template struct {
	Category Category
	Message  string
	Detail   string
	Hint     string
}

// registry maps error codes to their templates.
var registry = map[string]template{
	// File errors (C001-C009)
	"C001": {
		Category: CategoryFile,
		Message:  "cannot read route file",
		Detail:   "The route table file could not be opened or read.",
		Hint:     "Check the path and file permissions.",
	},
	"C002": {
		Category: CategoryFile,
		Message:  "route file is not valid JSON",
		Detail:   "The route table file exists but could not be parsed.",
		Hint:     "Validate the file with a JSON linter.",
	},

	// Configuration errors (C010-C019)
	"C010": {
		Category: CategoryConfig,
		Message:  "default language is empty",
		Detail:   "Every route table needs a default language; it determines which paths are served without a language prefix.",
		Hint:     "Set \"defaultLanguage\" to one of the supported languages.",
	},
	"C011": {
		Category: CategoryConfig,
		Message:  "default language not in supported list",
		Detail:   "The default language must appear in \"supportedLanguages\", or no route can resolve for it.",
		Hint:     "Add the default language to \"supportedLanguages\".",
	},
	"C012": {
		Category: CategoryConfig,
		Message:  "no route definitions",
		Detail:   "The route table declares no definitions, so there is nothing to resolve against.",
		Hint:     "Add at least one entry to \"definitions\".",
	},

	// Compile diagnostics (C020-C029)
	"C020": {
		Category: CategoryCompile,
		Message:  "route entry references unknown definition",
		Detail:   "A locale entry names a key that has no definition; the entry is dropped at compile time.",
		Hint:     "Add the definition or remove the entry.",
	},
	"C021": {
		Category: CategoryCompile,
		Message:  "route entry uses unsupported language",
		Detail:   "A locale entry names a language outside the supported list; the entry is dropped at compile time.",
		Hint:     "Add the language to \"supportedLanguages\" or fix the entry.",
	},
	"C022": {
		Category: CategoryCompile,
		Message:  "duplicate concrete path",
		Detail:   "Two locale entries build the same concrete path; the first wins and the second is dropped.",
		Hint:     "Give each (key, language) pair a distinct path.",
	},
}
