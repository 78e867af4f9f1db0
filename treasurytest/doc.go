/*
Package treasurytest provides mocks and helpers for testing the treasury
extensions.
*/
package treasurytest
