/*
Package operation edits a generated project tree in place.

	+-------------+       +--------------+
	|   Project   | ----> |  FileSystem  |
	|  (root dir) |       | (OS, DryRun) |
	+------+------+       +--------------+
	       |
	+------+-------+-----------+
	|              |           |
	+----------+ +---------+ +--------+
	| comment  | |  text   | |  tree  |
	| (blocks) | | (rules) | | (rm)   |
	+----------+ +---------+ +--------+

🎯 Purpose:
A Project is rooted at one directory. Every operation takes paths relative to that
root (absolute paths are used as-is) and goes through a filesystem.FileSystem, so
the same calls work against the disk or a dry run.

🔄 Flow:
1. Resolve the path or list files matching a glob
2. Read, transform with pkg/comment or pkg/text
3. Write back only when the content changed
4. Report the change to the Reporter

⚡ Behaviour:
- Files and directories that do not exist are skipped silently
- Files without a comment dialect are skipped by the comment edits
- Rules are validated before the first file is touched
- Bulk operations run one file at a time and stop at the first error

🔍 Example:

	p, err := operation.New(operation.Options{Root: "./MyProject"})
	if err != nil {
		return err
	}
	if err := p.DeleteDirectory(ctx, "Bluetooth"); err != nil {
		return err
	}
	return p.EditComment(ctx, "Bluetooth", comment.DeleteCode)
*/
package operation
