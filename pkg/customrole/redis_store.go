package customrole

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each role as a JSON string under "<prefix>:custom_role:<id>"
// and tracks ids in the set "<prefix>:custom_roles".
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore returns a store using client. An empty prefix means "posaccess".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "posaccess"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(id string) string { return fmt.Sprintf("%s:custom_role:%s", s.prefix, id) }
func (s *RedisStore) indexKey() string     { return s.prefix + ":custom_roles" }

// createScript writes the document and its index entry in one step.
// SADD runs first: it is the only command that can fail on an existing key,
// and a failing call aborts the script before the document is written.
var createScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("SADD", KEYS[2], ARGV[2])
redis.call("SET", KEYS[1], ARGV[1])
return 1
`)

// Create stores a new role, or fails with ErrDuplicateID.
func (s *RedisStore) Create(ctx context.Context, role CustomRole) error {
	data, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("customrole: encode %s: %w", role.ID, err)
	}
	created, err := createScript.Run(ctx, s.client, []string{s.key(role.ID), s.indexKey()}, data, role.ID).Int()
	if err != nil {
		return fmt.Errorf("customrole: create %s: %w", role.ID, err)
	}
	if created == 0 {
		return ErrDuplicateID
	}
	return nil
}

// Get returns the role with id, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (CustomRole, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return CustomRole{}, ErrNotFound
	}
	if err != nil {
		return CustomRole{}, fmt.Errorf("customrole: get %s: %w", id, err)
	}
	var role CustomRole
	if err := json.Unmarshal(data, &role); err != nil {
		return CustomRole{}, fmt.Errorf("customrole: decode %s: %w", id, err)
	}
	return role, nil
}

// List returns the indexed roles, oldest first.
func (s *RedisStore) List(ctx context.Context) ([]CustomRole, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("customrole: list: %w", err)
	}
	out := make([]CustomRole, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("customrole: list: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Indexed but deleted between SMEMBERS and MGET.
			continue
		}
		var role CustomRole
		if err := json.Unmarshal([]byte(raw), &role); err != nil {
			return nil, fmt.Errorf("customrole: decode %s: %w", ids[i], err)
		}
		out = append(out, role)
	}
	sortRoles(out)
	return out, nil
}

// Update overwrites an existing role, keeping any TTL on its key.
func (s *RedisStore) Update(ctx context.Context, role CustomRole) error {
	data, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("customrole: encode %s: %w", role.ID, err)
	}
	updated, err := s.client.SetXX(ctx, s.key(role.ID), data, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("customrole: update %s: %w", role.ID, err)
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document and its index entry in one transaction.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.key(id))
		pipe.SRem(ctx, s.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("customrole: delete %s: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}
