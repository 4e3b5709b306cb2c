/*
Package status owns the build file on disk and reports what an update did.

	            +-------------+
	            |   Status    |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Report  |
	| (storage) |           | (diff)  |
	+-----------+           +---------+

🎯 Purpose:
- Reads the build file fully into memory
- Writes the rewritten buffer back in one piece
- Renders unified diffs and per-region summaries

🔄 Flow:
1. Files.ReadLines loads the buffer
2. the section package rewrites it in memory
3. Diff / FormatRegionChange describe the result
4. Files.WriteFileAtomic replaces the file, or nothing happens
*/
package status
