/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* It has a primary key, a model is loaded and saved by that key.
* Keys are prefixed with the bucket name so buckets never overlap.

Models are protobuf messages. The bucket takes care of the serialization
and refuses to persist a model that does not validate.
*/
package orm
