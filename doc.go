/*

Package treasury defines interfaces used throughout the treasury, such as:
storage, requests, accounts, handlers and the time and rent oracles.
It also contains helpers to work with context and the token account layouts.
Look into this package to get a brief overview of the building blocks that the
x/ extensions are composed of.

*/

package treasury
