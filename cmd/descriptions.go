package cmd

const fixLongDescription = `Run the configured doctest harness over the given paths and rewrite
each failing example so its recorded output matches what the code
actually produces.

Plain output mismatches are spliced in place. Exceptions are collapsed
to a three-line traceback placeholder, or turned into capability tags
when the failure shows a module or name is simply unavailable. Existing
tags that the harness proves redundant are removed again.

Nothing is touched unless the harness reports a failure for it: a file
whose doctests all pass is written back byte-identical.

Examples:
  mendoc fix src/algebra.py           fix one file in place
  mendoc fix src/...                  fix every carrier under src
  mendoc fix --no-overwrite src/a.py  write fixes to src/a.py.fixed
  mendoc fix --only-tags src/a.py     only add/remove tags, keep output
  mendoc fix --probe all src/a.py     re-check whether tags are needed`

const listLongDescription = `Scan the given paths for doctest carriers and print each file with the
number of examples it holds and any file-level tags, without running
the harness.

Useful to preview what a fix run would visit:
  mendoc list src/...
  mendoc list src/algebra.py doc/tutorial.rst`
