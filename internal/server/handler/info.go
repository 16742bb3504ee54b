package handler

type Info struct {
	Id         string
	PathPrefix string // without trailing '/', empty for the root handler
}

func NewInfo(id string, pathPrefix string) *Info {
	return &Info{
		Id:         id,
		PathPrefix: pathPrefix,
	}
}

// Matches reports if the request path belongs to this handler
func (i *Info) Matches(path string) bool {
	if i.PathPrefix == "" {
		return true
	}
	return path == i.PathPrefix || len(path) > len(i.PathPrefix) && path[:len(i.PathPrefix)+1] == i.PathPrefix+"/"
}
