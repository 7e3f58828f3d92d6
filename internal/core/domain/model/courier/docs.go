// Package courier provides the Courier aggregate.
//
// A courier is identified by a UUID, has a name and phone number, and an activity flag
// that administrators toggle. Inactive couriers cannot claim new orders.
package courier
