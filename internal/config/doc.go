// Package config loads and validates the JSON route table file used by the
// wayfind CLI. The file declares the language set, the logical route
// definitions, and the per-language concrete paths:
//
//	{
//	  "defaultLanguage": "en",
//	  "supportedLanguages": ["en", "be"],
//	  "definitions": {
//	    "home":  {},
//	    "about": {"title": "About us"}
//	  },
//	  "routes": [
//	    {"key": "home",  "language": "en", "path": "/"},
//	    {"key": "home",  "language": "be", "path": "/"},
//	    {"key": "about", "language": "en", "path": "/about"},
//	    {"key": "about", "language": "be", "path": "/over-ons"}
//	  ]
//	}
package config
