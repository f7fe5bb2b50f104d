/*

Process of building a program tree

Caller assembled constructs ->
	factories (build) ->
Logical Node Graph (ir, tp) ->
	insert / connect / mutate (build) ->
Encoded Records (wire, intern, bitpack) ->
	export / rebuild (build) ->
Binary Container (bytes)

The logical graph is plain mutable data keyed by ID. The binary buffer is
append only and forward only: every export is a single pass, offsets are
never patched after the pass is finished.

*/
package tree
