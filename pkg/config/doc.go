/*
Package config loads the per-project formatting settings for np.

	            +-------------+
	            |  Settings   |
	            +------+------+
	                   |
	    +--------------+--------------+
	    |              |              |
	+---+---+     +----+----+    +----+----+
	|  .np  |     | .np.yaml|    | .np.hcl |
	| lines |     |  Parser |    |  Parser |
	+-------+     +---------+    +---------+

🎯 Purpose:
- Reads the optional settings file from the project directory
- Falls back to defaults (two spaces) when no file exists
- Reports malformed lines without aborting the load

🔄 Flow:
1. Find the first settings file present in the directory
2. Pick the registered parser for its name
3. Parse into a Settings value plus warnings
4. Hand the Settings value to discovery and rewriting explicitly

⚠️ Errors:
- ParseError: a recognized key with a malformed value, aborts the load
- Warning: an unrecognized key or a line that is not "key: value", logged
*/
package config
