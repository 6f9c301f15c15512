// Package gitref parses the source-control references used by the deployment
// configuration. A reference has the form "remote[#ref]" where remote is any
// URL or scp-like address git understands and ref names a branch, a
// remote-tracking branch ("origin/ucc") or a full "refs/..." name.
package gitref

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// ErrInvalidRef is returned for references that cannot be parsed.
var ErrInvalidRef = errors.New("invalid git reference")

// Ref is a parsed source-control reference.
type Ref struct {
	Remote   string // as written: "git@home:public/swat4"
	Spec     string // as written after '#', may be empty
	Endpoint *transport.Endpoint
	Name     plumbing.ReferenceName // resolved full name, empty when Spec is empty
}

// Parse splits s into its remote and ref parts and validates both.
func Parse(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("%w: empty", ErrInvalidRef)
	}

	remote, spec, _ := strings.Cut(s, "#")
	if remote == "" {
		return Ref{}, fmt.Errorf("%w: %q has no remote", ErrInvalidRef, s)
	}

	ep, err := transport.NewEndpoint(remote)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %q: %v", ErrInvalidRef, remote, err)
	}
	if ep.Path == "" || ep.Path == "/" {
		return Ref{}, fmt.Errorf("%w: %q has no repository path", ErrInvalidRef, remote)
	}

	r := Ref{Remote: remote, Spec: spec, Endpoint: ep}
	if spec == "" {
		return r, nil
	}

	r.Name = resolveName(spec)
	if err := r.Name.Validate(); err != nil {
		return Ref{}, fmt.Errorf("%w: ref %q: %v", ErrInvalidRef, spec, err)
	}
	return r, nil
}

// resolveName expands a short ref into a full reference name.
// "refs/..." is kept, "remote/branch" is a remote-tracking branch,
// anything else is a local branch.
func resolveName(spec string) plumbing.ReferenceName {
	if strings.HasPrefix(spec, "refs/") {
		return plumbing.ReferenceName(spec)
	}
	if remote, branch, ok := strings.Cut(spec, "/"); ok && remote != "" && branch != "" {
		return plumbing.NewRemoteReferenceName(remote, branch)
	}
	return plumbing.NewBranchReferenceName(spec)
}

// String reproduces the reference in its written form.
func (r Ref) String() string {
	if r.Spec == "" {
		return r.Remote
	}
	return r.Remote + "#" + r.Spec
}

// Repo returns the repository name: last path component, ".git" stripped.
func (r Ref) Repo() string {
	if r.Endpoint == nil {
		return ""
	}
	p := strings.TrimSuffix(strings.TrimRight(r.Endpoint.Path, "/"), ".git")
	return path.Base(p)
}

// Branch returns the short branch name the ref points at, or "" when unset.
func (r Ref) Branch() string {
	if r.Name == "" {
		return ""
	}
	if r.Name.IsRemote() {
		_, branch, _ := strings.Cut(r.Name.Short(), "/")
		return branch
	}
	return r.Name.Short()
}
