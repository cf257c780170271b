// Package diagnostic provides coded errors, warnings and notes reported
// while analysing enumerations for the optconst generator.
//
// Every generation-time failure has a stable code:
//   - OC001 missing family attribute
//   - OC002 malformed family attribute
//   - OC003 malformed annotation
//   - OC004 input is not an enumeration
//   - OC005 variant is not a distinct fieldless value
//   - OC006 enumeration has no variants
//   - OC007 generated identifier collides with an existing one
//   - OC008 directive and config file disagree
//
// Any error aborts generation before a single file is written.
package diagnostic
