// SPDX-License-Identifier: MIT

package algebra

// DefaultStorage is the coefficient container used when no option is given.
const DefaultStorage = Dense

const panicStorageInvalid = "algebra: WithStorage: unknown storage kind"

// MultivectorOption configures Multivector construction.
type MultivectorOption func(*multivectorOptions)

type multivectorOptions struct {
	storage StorageKind
}

// WithStorage selects the coefficient container. Panics on an unknown kind.
func WithStorage(kind StorageKind) MultivectorOption {
	if kind != Dense && kind != Sparse {
		panic(panicStorageInvalid)
	}

	return func(o *multivectorOptions) {
		o.storage = kind
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...MultivectorOption) multivectorOptions {
	o := multivectorOptions{storage: DefaultStorage}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
