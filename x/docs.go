/*
Package x holds the extensions of the application and the authentication
helpers they share.

threshold implements the guarded transfer and its administration. It
relies on cash for balances, on sigs for signature checks and on utils
for the decorators every transaction passes through.
*/
package x
