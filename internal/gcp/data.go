package gcp

import (
	"context"
	"fmt"

	bigquery "google.golang.org/api/bigquery/v2"
	redis "google.golang.org/api/redis/v1"
	sqladmin "google.golang.org/api/sqladmin/v1"
	storage "google.golang.org/api/storage/v1"
)

type sqlClient struct {
	svc *sqladmin.Service
}

var _ SQLService = (*sqlClient)(nil)

func (c *sqlClient) ListInstances(ctx context.Context, projectID string) ([]*sqladmin.DatabaseInstance, error) {
	resp, err := c.svc.Instances.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

type redisClient struct {
	svc *redis.Service
}

var _ RedisService = (*redisClient)(nil)

func (c *redisClient) ListInstances(ctx context.Context, projectID string) ([]*redis.Instance, error) {
	parent := fmt.Sprintf("projects/%s/locations/-", projectID)
	resp, err := c.svc.Projects.Locations.Instances.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Instances, nil
}

type bigqueryClient struct {
	svc *bigquery.Service
}

var _ BigQueryService = (*bigqueryClient)(nil)

func (c *bigqueryClient) ListDatasets(ctx context.Context, projectID string) ([]*bigquery.DatasetListDatasets, error) {
	resp, err := c.svc.Datasets.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Datasets, nil
}

type storageClient struct {
	svc *storage.Service
}

var _ StorageService = (*storageClient)(nil)

func (c *storageClient) ListBuckets(ctx context.Context, projectID string) ([]*storage.Bucket, error) {
	resp, err := c.svc.Buckets.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}
