package screen

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/careconnect/portal-api/internal/service/portal"
)

const defaultTTL = 30 * time.Minute

// Registry keeps live screens keyed by the opaque id a client echoes back
// in X-Screen-ID. TTL eviction is the unmount: an idle screen's state is
// dropped and the next request starts a fresh one.
type Registry struct {
	svc     *portal.Service
	screens *cache.Cache
	ttl     time.Duration
}

func NewRegistry(svc *portal.Service, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Registry{
		svc:     svc,
		screens: cache.New(ttl, ttl),
		ttl:     ttl,
	}
}

// Patient returns the patient screen for id, creating one (with a fresh id)
// when the id is empty or expired. Access renews the TTL.
func (r *Registry) Patient(id string) (*PatientScreen, string) {
	if id != "" {
		if cached, ok := r.screens.Get("patient:" + id); ok {
			s := cached.(*PatientScreen)
			r.screens.Set("patient:"+id, s, r.ttl)
			return s, id
		}
	}
	id = uuid.NewString()
	s := NewPatientScreen(r.svc)
	r.screens.Set("patient:"+id, s, r.ttl)
	return s, id
}

// Doctor returns the doctor screen for id, creating one when the id is
// empty or expired. Access renews the TTL.
func (r *Registry) Doctor(id string) (*DoctorScreen, string) {
	if id != "" {
		if cached, ok := r.screens.Get("doctor:" + id); ok {
			s := cached.(*DoctorScreen)
			r.screens.Set("doctor:"+id, s, r.ttl)
			return s, id
		}
	}
	id = uuid.NewString()
	s := NewDoctorScreen(r.svc)
	r.screens.Set("doctor:"+id, s, r.ttl)
	return s, id
}
