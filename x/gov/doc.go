/*
Package gov counts votes on proposals.

Every vote request increments the tally of a proposal by one. A proposal
is created with its first vote and is never removed. By default the same
voter may vote on a proposal many times. When duplicate votes are
rejected, a vote record is stored for every voter and proposal.
*/
package gov
