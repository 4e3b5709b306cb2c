/*
Package operation implements the update flow that keeps the file lists of a
build file in sync with the project tree.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	|  (section)  |
	+------+------+

🎯 Purpose:
- Loads the project settings
- Reads the build file fully into memory
- Rewrites every region from a fresh discovery
- Writes the buffer back only when every region succeeded

🔄 Flow:
1. config.Load picks up .np, .np.yaml or .np.hcl
2. status.Files reads the build file
3. section.Rewrite replaces the regions, asking the discoverer for entries
4. status.Diff describes the result
5. status.Files writes it atomically, unless nothing changed or DryRun is set

🔍 Example:

	op, err := operation.New(operation.Options{Dir: "."})
	report, err := op.Update(ctx)
*/
package operation
