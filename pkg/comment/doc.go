/*
Package comment implements the marker-delimited comment block protocol used by scaffolded templates.

A template author wraps optional code in a named block using the file's own comment syntax:

	// $Start-Bluetooth$
	// services.AddBluetooth();
	// $End-Bluetooth$

	<!-- $Start-Analytics$ -->
	<!-- <script src="analytics.js"></script> -->
	<!-- $End-Analytics$ -->

After generation the block is either kept, uncommented (activated) or deleted. The marker
lines are always removed.

🧩 Pieces:
- Dialect: comment tokens per file extension (LookupDialect, ForFile)
- Markers: literal start/end marker text for a block name
- Edit: the line scanner that applies a Mode to every block with that name

The package works on line slices only; reading and writing files belongs to the caller.
*/
package comment
