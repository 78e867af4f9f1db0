/*
Package utils provides decorators that are useful in every handler stack:
panic recovery, request logging and savepoints.
*/
package utils
