// Package services contains stateless domain services that do not belong
// to a single aggregate. Currently this is the TimeoutPolicy governing
// lazy order expiry on the payment path.
package services
