package locroute

// BuildPath derives the concrete path for a locale entry's raw path under
// the given language. Routes in the default language keep their raw path;
// every other language gets a "/<language>" prefix, with the root path
// collapsing so a non-default home route becomes "/<language>" rather than
// "/<language>/".
//
// No further normalization happens here: raw paths are expected to arrive
// already normalized (leading slash, no trailing slash, no duplicate
// slashes). The function is total; any two strings are accepted.
func BuildPath(language, defaultLanguage, raw string) string {
	if language == defaultLanguage {
		return raw
	}
	if raw == "/" {
		return "/" + language
	}
	return "/" + language + raw
}
