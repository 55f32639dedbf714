package api

import (
	"context"
	"net/http"

	"github.com/CannonJunior/x-uav/client/internal/types"
)

// ListArmaments returns every armament record.
func ListArmaments(ctx context.Context, t *Transport) (*types.ArmamentList, error) {
	var out types.ArmamentList
	if err := t.Do(ctx, Call{Op: "list_armaments", Method: http.MethodGet, Path: "/armaments"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArmament fetches one armament by designation.
func GetArmament(ctx context.Context, t *Transport, designation string) (*types.Armament, error) {
	if err := types.ValidateKey("designation", designation); err != nil {
		return nil, err
	}
	var out types.Armament
	err := t.Do(ctx, Call{
		Op:         "get_armament",
		Method:     http.MethodGet,
		Path:       "/armaments/{designation}",
		PathParams: map[string]string{"designation": designation},
		Resource:   "armament",
		Key:        designation,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchArmaments filters armaments by the non-empty fields of q.
func SearchArmaments(ctx context.Context, t *Transport, q types.ArmamentSearch) (*types.ArmamentList, error) {
	var out types.ArmamentList
	err := t.Do(ctx, Call{
		Op:     "search_armaments",
		Method: http.MethodGet,
		Path:   "/armaments/search",
		Query:  q.Values(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUAVArmaments lists the armaments compatible with a UAV.
func GetUAVArmaments(ctx context.Context, t *Transport, designation string) (*types.UAVArmaments, error) {
	if err := types.ValidateKey("designation", designation); err != nil {
		return nil, err
	}
	var out types.UAVArmaments
	err := t.Do(ctx, Call{
		Op:         "get_uav_armaments",
		Method:     http.MethodGet,
		Path:       "/uavs/{designation}/armaments",
		PathParams: map[string]string{"designation": designation},
		Resource:   "uav",
		Key:        designation,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArmamentUAVs lists the UAVs able to carry an armament.
func GetArmamentUAVs(ctx context.Context, t *Transport, designation string) (*types.ArmamentCarriers, error) {
	if err := types.ValidateKey("designation", designation); err != nil {
		return nil, err
	}
	var out types.ArmamentCarriers
	err := t.Do(ctx, Call{
		Op:         "get_armament_uavs",
		Method:     http.MethodGet,
		Path:       "/armaments/{designation}/uavs",
		PathParams: map[string]string{"designation": designation},
		Resource:   "armament",
		Key:        designation,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
