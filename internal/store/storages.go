// Package store holds the repositories behind the service layer. The
// bundled implementation keeps everything in memory.
package store

type Storages struct {
	MemberRepository MemberRepository
}

func NewStorages() *Storages {
	return &Storages{
		MemberRepository: NewMemoryMemberRepository(),
	}
}
