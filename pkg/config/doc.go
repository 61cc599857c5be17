/*
Package config loads and validates scaffoldrc recipes.

	            +-------------+
	            |   Recipe    |
	            |   (Steps)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
A recipe is what a project generator writes down once it knows the user's choices:
which files and directories to drop, which comment blocks to keep, activate or
delete, and which text to rewrite. scaffoldrc applies it to the generated tree.

🔄 Flow:
1. Load reads the file and picks a parser by extension
2. The parser decodes into Recipe
3. Validate checks every step (modes, regex patterns, globs, required fields)
4. ResolveRoot turns the recipe's root into a path relative to the recipe file

🔍 Example:

	root: ./MyProject
	steps:
	  - delete_directory: { path: Bluetooth }
	  - edit_comment: { name: Bluetooth, mode: delete }
	  - edit_comment: { name: Https, mode: uncomment, glob: "*.cs" }
	  - replace: { old: MyTemplate, new: Contoso, file: README.txt }
	  - regex_replace: { pattern: 'Version="[^"]*"', replacement: 'Version="1.0.0"', glob: "*.xml" }
*/
package config
