/*Package interval defines the shared genomic-coordinate type used by pile
  and asmgraph, so neither package has to pick its own width for a base
  position. PosType is currently int32, which covers any individual long
  read with room to spare.
*/
package interval
