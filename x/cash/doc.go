/*
Package cash is a single asset ledger. Every address owns one wallet
holding a balance. The controller is the only way to change balances,
other extensions use it to move value between addresses.
*/
package cash
