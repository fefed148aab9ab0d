/*
Package bank implements the fungible bank contract core: per-account
balances with a tracked total supply, delegated spend allowances and the
administrative controls (pause flag, blacklist, ownership) gating them.

The package is a pure state machine. It holds no globals, performs no
I/O and takes the caller account as an explicit argument of every
method; resolving the caller identity and serializing invocations is the
job of the dispatching boundary (see the dispatch package). Every method
either applies completely or returns one of the error kinds declared in
this package and leaves the state exactly as it was. Between successful
calls the sum of all balances always equals the total supply.

Contract notifications

Transfer notification. Produced for every balance movement, including
movements driven by allowances and each credit of a batch transfer.

  Transfer:
    - name: from
      type: Hash160
    - name: to
      type: Hash160
    - name: amount
      type: Integer

Mint notification. Produced when the owner increases the total supply.

  Mint:
    - name: to
      type: Hash160
    - name: amount
      type: Integer
    - name: newTotalSupply
      type: Integer

Burn notification. Produced when an account destroys part of its own
balance.

  Burn:
    - name: from
      type: Hash160
    - name: amount
      type: Integer
    - name: newTotalSupply
      type: Integer

Approval notification. Produced when an allowance is set or adjusted;
amount is the resulting allowance.

  Approval:
    - name: owner
      type: Hash160
    - name: spender
      type: Hash160
    - name: amount
      type: Integer

Paused and Unpaused notifications. Produced when the paused flag
actually changes.

BlacklistAdded and BlacklistRemoved notifications. Produced when the
blacklist actually changes.

  BlacklistAdded / BlacklistRemoved:
    - name: account
      type: Hash160

OwnershipTransferred notification. Produced when the contract changes
hands.

  OwnershipTransferred:
    - name: previousOwner
      type: Hash160
    - name: newOwner
      type: Hash160
*/
package bank
