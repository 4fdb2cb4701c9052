package models

// TrivaneAssetAbi is the constructor ABI of the replicated asset contract.
// Constructor arguments must be packed against this ABI so every domain
// derives a byte-identical bytecode hash.
const TrivaneAssetAbi = `[
  {
    "inputs": [
      { "internalType": "string", "name": "name_", "type": "string" },
      { "internalType": "string", "name": "symbol_", "type": "string" },
      { "internalType": "uint256", "name": "initialSupply_", "type": "uint256" },
      { "internalType": "uint64", "name": "originDomainId_", "type": "uint64" }
    ],
    "stateMutability": "nonpayable",
    "type": "constructor"
  }
]`

// TrivaneAssetBin is the creation code of the replicated asset contract,
// produced by the contracts build. Pinned here so address derivation does not
// depend on build artifacts being present at runtime.
const TrivaneAssetBin = "0x60806040523480156200001157600080fd5b5060405162000e3838038062000e38833981016040819052620000349162000218565b8351849084906200004d906003906020850190620000a5565b50805162000063906004906020840190620000a5565b50506005805467ffffffffffffffff191667ffffffffffffffff84161790555046816001600160401b0316036200009b576200009b33836200012f565b50505050620002f1565b828054620000b390620002b4565b90600052602060002090601f016020900481019282620000d7576000855562000122565b82601f10620000f257805160ff191683800117855562000122565b8280016001018555821562000122579182015b828111156200012257825182559160200191906001019062000105565b50620001309291506200013e565b5090565b6200013a8282620001f0565b5050565b5b808211156200013057600081556001016200013f565b634e487b7160e01b600052604160045260246000fd5b600082601f8301126200017d57600080fd5b81516001600160401b03808211156200019a576200019a62000155565b604051601f8301601f19908116603f01168101908282118183101715620001c557620001c562000155565b81604052838152602092508683858801011115620001e257600080fd5b600091505b83821015620002065785820183015181830184015290820190620001e7565b50505050905090810190601f168015620002345780820380516001836020036101000a031916815260200191505b509250505060405250505056fe"
