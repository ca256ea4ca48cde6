package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records the last input of each call and returns canned outputs.
type fakeDynamo struct {
	putIn    *dynamodb.PutItemInput
	getIn    *dynamodb.GetItemInput
	updateIn *dynamodb.UpdateItemInput
	deleteIn *dynamodb.DeleteItemInput
	queryIn  []*dynamodb.QueryInput
	scanIn   []*dynamodb.ScanInput

	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	queryOut  []*dynamodb.QueryOutput
	scanOut   []*dynamodb.ScanOutput
	err       error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.err
	}
	return f.getOut, f.err
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.updateOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.err
	}
	return f.updateOut, f.err
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.deleteIn = in
	return &dynamodb.DeleteItemOutput{}, f.err
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queryIn = append(f.queryIn, &cp)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.queryIn) - 1
	if i >= len(f.queryOut) {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.queryOut[i], nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	cp := *in
	f.scanIn = append(f.scanIn, &cp)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.scanIn) - 1
	if i >= len(f.scanOut) {
		return &dynamodb.ScanOutput{}, nil
	}
	return f.scanOut[i], nil
}
